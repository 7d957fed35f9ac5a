package package_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"condotrack/internal/entities"
	"condotrack/internal/pkg/middlewares/auth"
	"condotrack/internal/service/lifecycle"
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
	if actor.Role != entities.RoleAdmin {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.DeletePackage(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
