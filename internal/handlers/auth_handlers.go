package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/zhdanov/girls-backend/internal/domain"
)

// RequestCode issues a one-time code and emails it. The code itself never
// appears in the response.
func (h *Handlers) RequestCode(w http.ResponseWriter, r *http.Request) {
	var req domain.RequestCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_INPUT")
		return
	}

	if err := h.authService.RequestCode(r.Context(), req.GirlID); err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Code sent to email",
	})
}

// VerifyCode redeems a code for a session token.
func (h *Handlers) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		// Malformed codes cannot match a ledger entry; answer with the same
		// merged signal as a miss.
		writeError(w, http.StatusBadRequest, "Invalid or expired code", "INVALID_OR_EXPIRED")
		return
	}

	resp, err := h.authService.Verify(r.Context(), req.GirlID, req.Code)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
