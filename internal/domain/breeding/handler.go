package breeding

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
	r.Route("/breeding", func(br chi.Router) {
		br.Get("/dashboard", dashboardHandler(svc))

		br.Route("/events", func(er chi.Router) {
			er.Post("/", createEventHandler(svc, log))
			er.Get("/", listEventsHandler(svc, log))
			er.Get("/{eventID}", getEventHandler(svc, log))
			er.Patch("/{eventID}", updateEventHandler(svc, log))
			er.Delete("/{eventID}", deleteEventHandler(svc, log))
		})
	})
}

type createEventRequest struct {
	AnimalID        string    `json:"animal_id"`
	EventType       EventType `json:"event_type" enums:"heat_cycle,breeding,pregnancy_confirmation,birth"`
	Date            string    `json:"date"` // YYYY-MM-DD
	PartnerAnimalID *string   `json:"partner_animal_id"`
	PartnerName     string    `json:"partner_name"`
	ExpectedDueDate string    `json:"expected_due_date"`
	ActualBirthDate string    `json:"actual_birth_date"`
	OffspringCount  *int      `json:"offspring_count"`
	Notes           string    `json:"notes"`
	PropertyID      *string   `json:"property_id"`
}

type updateEventRequest struct {
	AnimalID        *string    `json:"animal_id"`
	EventType       *EventType `json:"event_type"`
	Date            *string    `json:"date"`
	PartnerAnimalID *string    `json:"partner_animal_id"` // "" desasocia
	PartnerName     *string    `json:"partner_name"`
	ExpectedDueDate *string    `json:"expected_due_date"` // "" borra
	ActualBirthDate *string    `json:"actual_birth_date"` // "" borra
	OffspringCount  *int       `json:"offspring_count"`
	Notes           *string    `json:"notes"`
	PropertyID      *string    `json:"property_id"`
}

type eventResponse struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	AnimalID        string         `json:"animal_id"`
	EventType       EventType      `json:"event_type"`
	Date            httpjson.Date  `json:"date"`
	PartnerAnimalID *string        `json:"partner_animal_id,omitempty"`
	PartnerName     string         `json:"partner_name,omitempty"`
	ExpectedDueDate *httpjson.Date `json:"expected_due_date,omitempty"`
	ActualBirthDate *httpjson.Date `json:"actual_birth_date,omitempty"`
	OffspringCount  *int           `json:"offspring_count,omitempty"`
	Notes           string         `json:"notes"`
	PropertyID      *string        `json:"property_id,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// dashboardHandler godoc
// @Summary Tablero de cría
// @Description Contadores de hembras en cría, preñadas, lactando (birth en los últimos 60 días) y abiertas.
// @Description Si la lectura de eventos falla devuelve todo en cero con 200; la falla queda en logs y en
// @Description dashboard_fetch_failures_total{dashboard="breeding"}.
// @Tags breeding
// @Produce json
// @Success 200 {object} Summary
// @Failure 401 {string} string "unauthorized"
// @Router /breeding/dashboard [get]
func dashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())
		httpjson.Write(w, http.StatusOK, svc.Dashboard(r.Context(), userID))
	}
}

// createEventHandler godoc
// @Summary Registrar evento de cría
// @Description animal_id, partner_animal_id y property_id deben pertenecer al usuario.
// @Tags breeding
// @Accept json
// @Produce json
// @Param payload body createEventRequest true "Evento; fechas YYYY-MM-DD"
// @Success 201 {object} eventResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Router /breeding/events [post]
func createEventHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req createEventRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		date, err := httpjson.ParseDate(req.Date)
		if err != nil {
			httpjson.BadRequest(w, "date must be YYYY-MM-DD")
			return
		}
		due, err := httpjson.ParseOptionalDate("expected_due_date", req.ExpectedDueDate)
		if err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}
		born, err := httpjson.ParseOptionalDate("actual_birth_date", req.ActualBirthDate)
		if err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		e, err := svc.Create(r.Context(), userID, CreateInput{
			AnimalID:        req.AnimalID,
			Type:            req.EventType,
			Date:            date,
			PartnerAnimalID: req.PartnerAnimalID,
			PartnerName:     req.PartnerName,
			ExpectedDueDate: due,
			ActualBirthDate: born,
			OffspringCount:  req.OffspringCount,
			Notes:           req.Notes,
			PropertyID:      req.PropertyID,
		})
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toEventResponse(e))
	}
}

// listEventsHandler godoc
// @Summary Listar eventos de cría
// @Tags breeding
// @Produce json
// @Param animal_id query string false "Filtra por animal"
// @Param event_type query string false "Uno o varios tipos separados por coma"
// @Param from query string false "Desde (YYYY-MM-DD, inclusive)"
// @Param to query string false "Hasta (YYYY-MM-DD, inclusive)"
// @Success 200 {array} eventResponse
// @Failure 400 {string} string "filtro inválido"
// @Router /breeding/events [get]
func listEventsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())
		q := r.URL.Query()

		filter := ListFilter{AnimalID: strings.TrimSpace(q.Get("animal_id"))}
		for _, raw := range strings.Split(q.Get("event_type"), ",") {
			if raw = strings.TrimSpace(raw); raw != "" {
				filter.Types = append(filter.Types, EventType(raw))
			}
		}

		var err error
		if filter.From, err = httpjson.ParseOptionalDate("from", q.Get("from")); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}
		if filter.To, err = httpjson.ParseOptionalDate("to", q.Get("to")); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		items, err := svc.List(r.Context(), userID, filter)
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}

		out := make([]eventResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEventResponse(e))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// getEventHandler godoc
// @Summary Ver evento de cría
// @Tags breeding
// @Produce json
// @Param eventID path string true "ID"
// @Success 200 {object} eventResponse
// @Failure 404 {string} string "not found"
// @Router /breeding/events/{eventID} [get]
func getEventHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		e, err := svc.Get(r.Context(), userID, chi.URLParam(r, "eventID"))
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toEventResponse(e))
	}
}

// updateEventHandler godoc
// @Summary Editar evento de cría
// @Description PATCH parcial: campos ausentes no se tocan; "" en fechas opcionales las borra.
// @Tags breeding
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param payload body updateEventRequest true "Campos a modificar"
// @Success 200 {object} eventResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 404 {string} string "not found"
// @Router /breeding/events/{eventID} [patch]
func updateEventHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req updateEventRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		in := UpdateInput{
			AnimalID:        req.AnimalID,
			Type:            req.EventType,
			PartnerAnimalID: req.PartnerAnimalID,
			PartnerName:     req.PartnerName,
			OffspringCount:  req.OffspringCount,
			Notes:           req.Notes,
			PropertyID:      req.PropertyID,
		}
		if req.Date != nil {
			d, err := httpjson.ParseDate(*req.Date)
			if err != nil {
				httpjson.BadRequest(w, "date must be YYYY-MM-DD")
				return
			}
			in.Date = &d
		}
		if req.ExpectedDueDate != nil {
			d, err := httpjson.ParseOptionalDate("expected_due_date", *req.ExpectedDueDate)
			if err != nil {
				httpjson.BadRequest(w, err.Error())
				return
			}
			in.ExpectedDueDate = d
			in.ClearExpectedDueDate = d == nil
		}
		if req.ActualBirthDate != nil {
			d, err := httpjson.ParseOptionalDate("actual_birth_date", *req.ActualBirthDate)
			if err != nil {
				httpjson.BadRequest(w, err.Error())
				return
			}
			in.ActualBirthDate = d
			in.ClearActualBirthDate = d == nil
		}

		e, err := svc.Update(r.Context(), userID, chi.URLParam(r, "eventID"), in)
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toEventResponse(e))
	}
}

// deleteEventHandler godoc
// @Summary Borrar evento de cría
// @Tags breeding
// @Param eventID path string true "ID"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /breeding/events/{eventID} [delete]
func deleteEventHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		if err := svc.Delete(r.Context(), userID, chi.URLParam(r, "eventID")); err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toEventResponse(e Event) eventResponse {
	return eventResponse{
		ID:              e.ID,
		UserID:          e.UserID,
		AnimalID:        e.AnimalID,
		EventType:       e.Type,
		Date:            httpjson.Date(e.Date),
		PartnerAnimalID: e.PartnerAnimalID,
		PartnerName:     e.PartnerName,
		ExpectedDueDate: httpjson.DatePtr(e.ExpectedDueDate),
		ActualBirthDate: httpjson.DatePtr(e.ActualBirthDate),
		OffspringCount:  e.OffspringCount,
		Notes:           e.Notes,
		PropertyID:      e.PropertyID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
