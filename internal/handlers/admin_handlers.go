package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zhdanov/girls-backend/internal/domain"
)

func parseID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handlers) AdminListGirls(w http.ResponseWriter, r *http.Request) {
	girls, err := h.rosterService.ListAllGirls(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, girls)
}

func (h *Handlers) AdminCreateGirl(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateGirlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	girl, err := h.rosterService.CreateGirl(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, girl)
}

func (h *Handlers) AdminUpdateGirl(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id", "INVALID_INPUT")
		return
	}

	var req domain.UpdateGirlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	girl, err := h.rosterService.UpdateGirl(r.Context(), id, &req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, girl)
}

func (h *Handlers) AdminDeleteGirl(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id", "INVALID_INPUT")
		return
	}

	if err := h.rosterService.DeleteGirl(r.Context(), id); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handlers) AdminListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.adminService.ListGames(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

func (h *Handlers) AdminCreateGame(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	game, err := h.adminService.CreateGame(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, game)
}

func (h *Handlers) AdminUpdateGame(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id", "INVALID_INPUT")
		return
	}

	var req domain.UpdateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	game, err := h.adminService.UpdateGame(r.Context(), id, &req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (h *Handlers) AdminDeleteGame(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id", "INVALID_INPUT")
		return
	}

	if err := h.adminService.DeleteGame(r.Context(), id); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handlers) AdminListTarotCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.adminService.ListTarotCards(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (h *Handlers) AdminCreateTarotCard(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateTarotCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	card, err := h.adminService.CreateTarotCard(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

func (h *Handlers) AdminUpdateTarotCard(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateTarotCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	card, err := h.adminService.UpdateTarotCard(r.Context(), chi.URLParam(r, "uuid"), &req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (h *Handlers) AdminDeleteTarotCard(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.DeleteTarotCard(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handlers) AdminListPredictions(w http.ResponseWriter, r *http.Request) {
	predictions, err := h.adminService.ListPredictions(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, predictions)
}

func (h *Handlers) AdminCreatePrediction(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	prediction, err := h.adminService.CreatePrediction(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, prediction)
}

func (h *Handlers) AdminUpdatePrediction(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdatePredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	prediction, err := h.adminService.UpdatePrediction(r.Context(), chi.URLParam(r, "uuid"), &req)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prediction)
}

func (h *Handlers) AdminDeletePrediction(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.DeletePrediction(r.Context(), chi.URLParam(r, "uuid")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
