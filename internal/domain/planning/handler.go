package planning

import (
	"net/http"

	"homestead-architect/internal/middleware"
	"homestead-architect/internal/platform/httpjson"
	"homestead-architect/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/planning/overview", overviewHandler(svc, log))
}

// overviewHandler godoc
// @Summary Resumen de planificación
// @Description Propiedades, tareas pendientes, proyectos de infraestructura y estación actual.
// @Tags planning
// @Produce json
// @Success 200 {object} Overview
// @Failure 500 {string} string "internal error"
// @Router /planning/overview [get]
func overviewHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		o, err := svc.Overview(r.Context(), userID)
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, o)
	}
}
