package package_log_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"condotrack/internal/dto"
	"condotrack/internal/entities"
	"condotrack/pkg/logger"
)

const dateLayout = "2006-01-02"

var errInvalidQuery = errors.New("invalid query parameter")

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
	filter, err := filterFromQuery(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items, err := h.service.StatusFeed(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	itemDTOs := make([]dto.LogFeedItem, len(items))
	for i, item := range items {
		itemDTOs[i] = dto.LogFeedItem{
			LogID:      item.LogID,
			PackageID:  item.PackageID,
			Status:     item.Status.String(),
			StatusTime: item.StatusTime,
			Note:       item.Note,
			TrackingNo: item.TrackingNo,
			Carrier:    item.Carrier,
			TenantName: item.TenantName,
			Unit:       item.BuildingCode + item.RoomNo,
			UpdatedBy:  item.UpdatedBy,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(itemDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func filterFromQuery(values url.Values) (entities.LogFilter, error) {
	var filter entities.LogFilter

	if raw := values.Get("status"); raw != "" {
		status := entities.PackageStatus(raw)
		if !status.IsValid() {
			return filter, errInvalidQuery
		}
		filter.Status = &status
	}

	if raw := values.Get("unit"); raw != "" {
		unit := raw
		filter.Unit = &unit
	}

	if raw := values.Get("date"); raw != "" {
		date, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, errInvalidQuery
		}
		filter.Date = &date
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return filter, errInvalidQuery
		}
		filter.Limit = limit
	}

	return filter, nil
}
