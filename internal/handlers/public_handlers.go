package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zhdanov/girls-backend/internal/domain"
)

func (h *Handlers) ListGirls(w http.ResponseWriter, r *http.Request) {
	girls, err := h.rosterService.ListActiveGirls(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, girls)
}

func (h *Handlers) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.ListGames(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

func (h *Handlers) GameStub(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	game, err := h.gameService.GetGameStub(r.Context(), slug)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"slug":  game.Slug,
		"title": game.Title,
		"stub":  true,
	})
}

func (h *Handlers) ListTarotCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.gameService.ListTarotCards(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (h *Handlers) DrawTarot(w http.ResponseWriter, r *http.Request) {
	var req domain.TarotDrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	resp, err := h.gameService.DrawTarot(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) ListHoroscopeRoles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.gameService.HoroscopeRoles())
}

func (h *Handlers) ListHoroscopeSigns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.gameService.HoroscopeSigns())
}

func (h *Handlers) HoroscopePredictionGet(w http.ResponseWriter, r *http.Request) {
	req := domain.HoroscopePredictionRequest{
		RoleID: r.URL.Query().Get("role_id"),
		SignID: r.URL.Query().Get("sign_id"),
	}
	h.horoscopePrediction(w, r, &req)
}

func (h *Handlers) HoroscopePredictionPost(w http.ResponseWriter, r *http.Request) {
	var req domain.HoroscopePredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}
	h.horoscopePrediction(w, r, &req)
}

func (h *Handlers) horoscopePrediction(w http.ResponseWriter, r *http.Request, req *domain.HoroscopePredictionRequest) {
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_INPUT")
		return
	}

	text, err := h.gameService.HoroscopePrediction(r.Context(), req.RoleID, req.SignID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.HoroscopePredictionResponse{Text: text})
}

// CreateCertificate mints a shareable gift certificate link for the
// authenticated girl.
func (h *Handlers) CreateCertificate(w http.ResponseWriter, r *http.Request) {
	girl := girlFromContext(r)
	if girl == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated", "UNAUTHORIZED")
		return
	}

	resp, err := h.certService.Create(r.Context(), girl)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) LookupCertificate(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	resp, err := h.certService.Lookup(r.Context(), token)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
