package tenant_packages_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"condotrack/internal/dto"
	"condotrack/internal/entities"
	"condotrack/internal/pkg/middlewares/auth"
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
	tenant, ok := auth.TenantFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	filter, err := filterFromQuery(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	packages, err := h.service.TenantPackages(r.Context(), tenant.TenantID, filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	packageDTOs := make([]dto.Package, len(packages))
	for i, pkg := range packages {
		packageDTOs[i] = dto.Package{
			ID:         pkg.ID,
			TrackingNo: pkg.TrackingNo,
			Carrier:    pkg.Carrier,
			SenderName: pkg.SenderName,
			Status:     pkg.CurrentStatus.String(),
			ArrivedAt:  pkg.ArrivedAt,
			PickedUpAt: pkg.PickedUpAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(packageDTOs)
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

	filter.Search = values.Get("q")

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return filter, errInvalidQuery
		}
		filter.Limit = limit
	}

	return filter, nil
}
