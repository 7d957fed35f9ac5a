package package_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"condotrack/internal/dto"
	"condotrack/internal/entities"
	"condotrack/internal/pkg/middlewares/auth"
	"condotrack/internal/service/lifecycle"
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
	actor, ok := auth.StaffFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var createDTO dto.PackageCreate
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	packageModify := entities.PackageModify{
		TenantID:   &createDTO.TenantID,
		TrackingNo: createDTO.TrackingNo,
		Carrier:    createDTO.Carrier,
		SenderName: createDTO.SenderName,
		ArrivedAt:  createDTO.ArrivedAt,
	}
	if createDTO.Status != nil {
		status := entities.PackageStatus(*createDTO.Status)
		packageModify.CurrentStatus = &status
	}

	var note string
	if createDTO.Note != nil {
		note = *createDTO.Note
	}

	created, err := h.service.CreatePackage(r.Context(), packageModify, actor.Staff.ID, note)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrMissingTenant),
			errors.Is(err, lifecycle.ErrMissingStaff),
			errors.Is(err, lifecycle.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrTenantNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, lifecycle.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Package{
		ID:         created.ID,
		TenantID:   created.TenantID,
		TrackingNo: created.TrackingNo,
		Carrier:    created.Carrier,
		SenderName: created.SenderName,
		Status:     created.CurrentStatus.String(),
		ArrivedAt:  created.ArrivedAt,
		PickedUpAt: created.PickedUpAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
