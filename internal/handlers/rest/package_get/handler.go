package package_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"condotrack/internal/dto"
	"condotrack/internal/service/query"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	detail, err := h.service.PackageDetail(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, query.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	detailDTO := dto.PackageDetail{
		ID:             detail.ID,
		TrackingNo:     detail.TrackingNo,
		Carrier:        detail.Carrier,
		SenderName:     detail.SenderName,
		TenantName:     detail.TenantName,
		Unit:           detail.BuildingCode + detail.RoomNo,
		Status:         detail.CurrentStatus.String(),
		ArrivedAt:      detail.ArrivedAt,
		PickedUpAt:     detail.PickedUpAt,
		HandledByStaff: detail.HandledByStaff,
		LatestNote:     detail.LatestNote,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(detailDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
