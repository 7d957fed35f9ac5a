package login_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"condotrack/internal/dto"
	"condotrack/internal/service/auth"
	"condotrack/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var loginDTO dto.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	token, account, err := h.service.Login(r.Context(), loginDTO.Username, loginDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, auth.ErrAccountInactive):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.LoginResponse{
		Token: token,
		Role:  account.Role.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
