package tasks

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"homestead-architect/internal/middleware"
	"homestead-architect/internal/platform/httpjson"
	"homestead-architect/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/tasks", func(tr chi.Router) {
		tr.Post("/", createTaskHandler(svc, log))
		tr.Get("/", listTasksHandler(svc, log))
		tr.Get("/{taskID}", getTaskHandler(svc, log))
		tr.Patch("/{taskID}", updateTaskHandler(svc, log))
		tr.Delete("/{taskID}", deleteTaskHandler(svc, log))
	})
}

type createTaskRequest struct {
	PropertyID  *string `json:"property_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      Status  `json:"status" enums:"pending,in_progress,completed"`
	DueDate     string  `json:"due_date"`
}

type updateTaskRequest struct {
	PropertyID  *string `json:"property_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *Status `json:"status"`
	DueDate     *string `json:"due_date"` // "" borra
}

type taskResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	PropertyID  *string        `json:"property_id,omitempty"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      Status         `json:"status"`
	DueDate     *httpjson.Date `json:"due_date,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// createTaskHandler godoc
// @Summary Crear tarea
// @Tags tasks
// @Accept json
// @Produce json
// @Param payload body createTaskRequest true "Tarea; status por defecto pending"
// @Success 201 {object} taskResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Router /tasks [post]
func createTaskHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req createTaskRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}
		due, err := httpjson.ParseOptionalDate("due_date", req.DueDate)
		if err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		t, err := svc.Create(r.Context(), userID, CreateInput{
			PropertyID:  req.PropertyID,
			Title:       req.Title,
			Description: req.Description,
			Status:      req.Status,
			DueDate:     due,
		})
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toTaskResponse(t))
	}
}

// listTasksHandler godoc
// @Summary Listar tareas
// @Tags tasks
// @Produce json
// @Param status query string false "pending | in_progress | completed"
// @Param property_id query string false "Propiedad"
// @Param incomplete query bool false "Solo tareas no completadas"
// @Success 200 {array} taskResponse
// @Router /tasks [get]
func listTasksHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())
		q := r.URL.Query()

		filter := ListFilter{
			Status:     Status(strings.TrimSpace(q.Get("status"))),
			PropertyID: strings.TrimSpace(q.Get("property_id")),
		}
		if raw := q.Get("incomplete"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				httpjson.BadRequest(w, "incomplete must be a boolean")
				return
			}
			filter.Incomplete = v
		}

		items, err := svc.List(r.Context(), userID, filter)
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}

		out := make([]taskResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTaskResponse(t))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// getTaskHandler godoc
// @Summary Ver tarea
// @Tags tasks
// @Produce json
// @Param taskID path string true "ID"
// @Success 200 {object} taskResponse
// @Failure 404 {string} string "not found"
// @Router /tasks/{taskID} [get]
func getTaskHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		t, err := svc.Get(r.Context(), userID, chi.URLParam(r, "taskID"))
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toTaskResponse(t))
	}
}

// updateTaskHandler godoc
// @Summary Editar tarea
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskID path string true "ID"
// @Param payload body updateTaskRequest true "Campos a modificar; ausentes no se tocan"
// @Success 200 {object} taskResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 404 {string} string "not found"
// @Router /tasks/{taskID} [patch]
func updateTaskHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req updateTaskRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		in := UpdateInput{
			PropertyID:  req.PropertyID,
			Title:       req.Title,
			Description: req.Description,
			Status:      req.Status,
		}
		if req.DueDate != nil {
			d, err := httpjson.ParseOptionalDate("due_date", *req.DueDate)
			if err != nil {
				httpjson.BadRequest(w, err.Error())
				return
			}
			in.DueDate = d
			in.ClearDueDate = d == nil
		}

		t, err := svc.Update(r.Context(), userID, chi.URLParam(r, "taskID"), in)
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toTaskResponse(t))
	}
}

// deleteTaskHandler godoc
// @Summary Borrar tarea
// @Tags tasks
// @Param taskID path string true "ID"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /tasks/{taskID} [delete]
func deleteTaskHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		if err := svc.Delete(r.Context(), userID, chi.URLParam(r, "taskID")); err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toTaskResponse(t Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		PropertyID:  t.PropertyID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     httpjson.DatePtr(t.DueDate),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
