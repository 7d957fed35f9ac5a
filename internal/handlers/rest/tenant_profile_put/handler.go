package tenant_profile_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"condotrack/internal/dto"
	"condotrack/internal/entities"
	"condotrack/internal/pkg/middlewares/auth"
	"condotrack/internal/service/directory"
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
	tenant, ok := auth.TenantFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var updateDTO dto.TenantContactUpdate
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	modify := entities.TenantContactModify{
		Phone: updateDTO.Phone,
		Email: updateDTO.Email,
	}

	updated, err := h.service.UpdateTenantContact(r.Context(), tenant.TenantID, modify)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrInvalidPhone),
			errors.Is(err, directory.ErrInvalidEmail),
			errors.Is(err, directory.ErrEmptyUpdate):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, directory.ErrTenantNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	profile := dto.TenantProfile{
		TenantID:     updated.TenantID,
		FullName:     updated.FullName,
		Phone:        updated.Phone,
		Email:        updated.Email,
		RoomNo:       updated.RoomNo,
		Floor:        updated.Floor,
		BuildingCode: updated.BuildingCode,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(profile)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
