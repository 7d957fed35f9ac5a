package packages_get

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"condotrack/internal/dto"
	"condotrack/internal/entities"
	"condotrack/pkg/logger"
)

const dateLayout = "2006-01-02"

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

	summaries, err := h.service.StaffPackages(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	summaryDTOs := make([]dto.PackageSummary, len(summaries))
	for i, summary := range summaries {
		summaryDTOs[i] = dto.PackageSummary{
			ID:         summary.ID,
			TrackingNo: summary.TrackingNo,
			Carrier:    summary.Carrier,
			TenantName: summary.TenantName,
			Unit:       summary.BuildingCode + summary.RoomNo,
			Status:     summary.CurrentStatus.String(),
			ArrivedAt:  summary.ArrivedAt,
			PickedUpAt: summary.PickedUpAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(summaryDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func filterFromQuery(values url.Values) (entities.PackageFilter, error) {
	var filter entities.PackageFilter

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

	if raw := values.Get("period"); raw != "" {
		switch preset := entities.PeriodPreset(raw); preset {
		case entities.PeriodToday, entities.PeriodLast7, entities.PeriodLast30, entities.PeriodMonth:
			filter.Period = preset
		default:
			return filter, errInvalidQuery
		}
	}

	if raw := values.Get("start_date"); raw != "" {
		start, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, errInvalidQuery
		}
		filter.StartDate = &start
	}

	if raw := values.Get("end_date"); raw != "" {
		end, err := time.Parse(dateLayout, raw)
		if err != nil {
			return filter, errInvalidQuery
		}
		filter.EndDate = &end
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
