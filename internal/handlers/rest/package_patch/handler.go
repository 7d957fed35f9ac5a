package package_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updateDTO dto.PackageStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var status *entities.PackageStatus
	if updateDTO.Status != nil {
		parsed := entities.PackageStatus(*updateDTO.Status)
		status = &parsed
	}

	var note string
	if updateDTO.Note != nil {
		note = *updateDTO.Note
	}

	updated, err := h.service.ChangeStatus(r.Context(), id, status, note, actor.Staff.ID)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrInvalidStatus),
			errors.Is(err, lifecycle.ErrMissingStaff):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Package{
		ID:         updated.ID,
		TenantID:   updated.TenantID,
		TrackingNo: updated.TrackingNo,
		Carrier:    updated.Carrier,
		SenderName: updated.SenderName,
		Status:     updated.CurrentStatus.String(),
		ArrivedAt:  updated.ArrivedAt,
		PickedUpAt: updated.PickedUpAt,
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
