package infrastructure

import (
	"net/http"
	"strings"
	"time"

	"homestead-architect/internal/middleware"
	"homestead-architect/internal/platform/httpjson"
	"homestead-architect/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/infrastructure", func(ir chi.Router) {
		ir.Get("/overview", overviewHandler(svc, log))

		ir.Route("/projects", func(pr chi.Router) {
			pr.Post("/", createProjectHandler(svc, log))
			pr.Get("/", listProjectsHandler(svc, log))
			pr.Get("/{projectID}", getProjectHandler(svc, log))
			pr.Patch("/{projectID}", updateProjectHandler(svc, log))
			pr.Delete("/{projectID}", deleteProjectHandler(svc, log))
		})
	})
}

type createProjectRequest struct {
	PropertyID  *string     `json:"property_id"`
	Name        string      `json:"name"`
	Type        ProjectType `json:"type" enums:"greenhouse,barn,fence,water_system,other"`
	Status      Status      `json:"status" enums:"planned,in_progress,completed"`
	Budget      float64     `json:"budget"`
	StartDate   string      `json:"start_date"`
	TargetDate  string      `json:"target_date"`
	Description string      `json:"description"`
}

type updateProjectRequest struct {
	PropertyID  *string      `json:"property_id"`
	Name        *string      `json:"name"`
	Type        *ProjectType `json:"type"`
	Status      *Status      `json:"status"`
	Budget      *float64     `json:"budget"`
	StartDate   *string      `json:"start_date"`  // "" borra
	TargetDate  *string      `json:"target_date"` // "" borra
	Description *string      `json:"description"`
}

type projectResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	PropertyID  *string        `json:"property_id,omitempty"`
	Name        string         `json:"name"`
	Type        ProjectType    `json:"type"`
	Status      Status         `json:"status"`
	Budget      float64        `json:"budget"`
	StartDate   *httpjson.Date `json:"start_date,omitempty"`
	TargetDate  *httpjson.Date `json:"target_date,omitempty"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// overviewHandler godoc
// @Summary Resumen de proyectos
// @Description Cantidad y presupuesto por estado, más totales.
// @Tags infrastructure
// @Produce json
// @Success 200 {object} Overview
// @Router /infrastructure/overview [get]
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

// createProjectHandler godoc
// @Summary Crear proyecto de infraestructura
// @Tags infrastructure
// @Accept json
// @Produce json
// @Param payload body createProjectRequest true "Proyecto; status por defecto planned"
// @Success 201 {object} projectResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Router /infrastructure/projects [post]
func createProjectHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req createProjectRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}
		start, err := httpjson.ParseOptionalDate("start_date", req.StartDate)
		if err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}
		target, err := httpjson.ParseOptionalDate("target_date", req.TargetDate)
		if err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		p, err := svc.Create(r.Context(), userID, CreateInput{
			PropertyID:  req.PropertyID,
			Name:        req.Name,
			Type:        req.Type,
			Status:      req.Status,
			Budget:      req.Budget,
			StartDate:   start,
			TargetDate:  target,
			Description: req.Description,
		})
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toProjectResponse(p))
	}
}

// listProjectsHandler godoc
// @Summary Listar proyectos
// @Tags infrastructure
// @Produce json
// @Param status query string false "planned | in_progress | completed"
// @Param type query string false "greenhouse | barn | fence | water_system | other"
// @Param property_id query string false "Propiedad"
// @Param q query string false "Texto en nombre o descripción"
// @Success 200 {array} projectResponse
// @Router /infrastructure/projects [get]
func listProjectsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())
		q := r.URL.Query()

		items, err := svc.List(r.Context(), userID, ListFilter{
			Status:     Status(strings.TrimSpace(q.Get("status"))),
			Type:       ProjectType(strings.TrimSpace(q.Get("type"))),
			PropertyID: strings.TrimSpace(q.Get("property_id")),
			Query:      q.Get("q"),
		})
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}

		out := make([]projectResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toProjectResponse(p))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// getProjectHandler godoc
// @Summary Ver proyecto
// @Tags infrastructure
// @Produce json
// @Param projectID path string true "ID"
// @Success 200 {object} projectResponse
// @Failure 404 {string} string "not found"
// @Router /infrastructure/projects/{projectID} [get]
func getProjectHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		p, err := svc.Get(r.Context(), userID, chi.URLParam(r, "projectID"))
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toProjectResponse(p))
	}
}

// updateProjectHandler godoc
// @Summary Editar proyecto
// @Tags infrastructure
// @Accept json
// @Produce json
// @Param projectID path string true "ID"
// @Param payload body updateProjectRequest true "Campos a modificar; ausentes no se tocan"
// @Success 200 {object} projectResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 404 {string} string "not found"
// @Router /infrastructure/projects/{projectID} [patch]
func updateProjectHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req updateProjectRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		in := UpdateInput{
			PropertyID:  req.PropertyID,
			Name:        req.Name,
			Type:        req.Type,
			Status:      req.Status,
			Budget:      req.Budget,
			Description: req.Description,
		}
		if req.StartDate != nil {
			d, err := httpjson.ParseOptionalDate("start_date", *req.StartDate)
			if err != nil {
				httpjson.BadRequest(w, err.Error())
				return
			}
			in.StartDate = d
			in.ClearStartDate = d == nil
		}
		if req.TargetDate != nil {
			d, err := httpjson.ParseOptionalDate("target_date", *req.TargetDate)
			if err != nil {
				httpjson.BadRequest(w, err.Error())
				return
			}
			in.TargetDate = d
			in.ClearTargetDate = d == nil
		}

		p, err := svc.Update(r.Context(), userID, chi.URLParam(r, "projectID"), in)
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toProjectResponse(p))
	}
}

// deleteProjectHandler godoc
// @Summary Borrar proyecto
// @Tags infrastructure
// @Param projectID path string true "ID"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /infrastructure/projects/{projectID} [delete]
func deleteProjectHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		if err := svc.Delete(r.Context(), userID, chi.URLParam(r, "projectID")); err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toProjectResponse(p Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		PropertyID:  p.PropertyID,
		Name:        p.Name,
		Type:        p.Type,
		Status:      p.Status,
		Budget:      p.Budget,
		StartDate:   httpjson.DatePtr(p.StartDate),
		TargetDate:  httpjson.DatePtr(p.TargetDate),
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
