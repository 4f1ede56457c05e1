package handler

import (
	"encoding/json"
	"net/http"

	"github.com/loancompare/verify-api/internal/application/emailverify"
	"github.com/loancompare/verify-api/internal/pkg/validate"
)

// EmailVerificationHandler handles the send-code and verify-code endpoints.
type EmailVerificationHandler struct {
	svc emailverify.Service
}

func NewEmailVerificationHandler(svc emailverify.Service) *EmailVerificationHandler {
	return &EmailVerificationHandler{svc: svc}
}

func (h *EmailVerificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req emailverify.SendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.RequestCode(r.Context(), req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "verification code sent"})
}

func (h *EmailVerificationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req emailverify.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.ConfirmCode(r.Context(), req); err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			httpError(w, err)
			return
		}
		writeJSON(w, status, VerificationEnvelope{Verified: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, VerificationEnvelope{Verified: true, Message: "email verified"})
}
