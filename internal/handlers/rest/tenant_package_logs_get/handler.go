package tenant_package_logs_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"condotrack/internal/dto"
	"condotrack/internal/pkg/middlewares/auth"
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
	tenant, ok := auth.TenantFromContext(r.Context())
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

	pkg, items, err := h.service.TenantPackageLogs(r.Context(), tenant.TenantID, id)
	if err != nil {
		switch {
		case errors.Is(err, query.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, query.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PackageLogs{
		Package: dto.Package{
			ID:         pkg.ID,
			TrackingNo: pkg.TrackingNo,
			Carrier:    pkg.Carrier,
			SenderName: pkg.SenderName,
			Status:     pkg.CurrentStatus.String(),
			ArrivedAt:  pkg.ArrivedAt,
			PickedUpAt: pkg.PickedUpAt,
		},
		Logs: make([]dto.PackageLogItem, len(items)),
	}
	for i, item := range items {
		response.Logs[i] = dto.PackageLogItem{
			Status:     item.Status.String(),
			Note:       item.Note,
			StatusTime: item.StatusTime,
			UpdatedBy:  item.UpdatedBy,
		}
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
