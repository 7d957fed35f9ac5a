package me_get

import (
	"encoding/json"
	"net/http"

	"condotrack/internal/dto"
	"condotrack/internal/pkg/middlewares/auth"
	"condotrack/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.StaffFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	profile := dto.StaffProfile{
		ID:       actor.Staff.ID,
		FullName: actor.Staff.FullName,
		Phone:    actor.Staff.Phone,
		Email:    actor.Staff.Email,
		Role:     actor.Role.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(profile)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
