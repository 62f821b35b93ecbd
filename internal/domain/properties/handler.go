package properties

import (
	"net/http"
	"time"

	"homestead-architect/internal/middleware"
	"homestead-architect/internal/platform/httpjson"
	"homestead-architect/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/properties", func(pr chi.Router) {
		pr.Post("/", createPropertyHandler(svc, log))
		pr.Get("/", listPropertiesHandler(svc, log))
		pr.Get("/{propertyID}", getPropertyHandler(svc, log))
		pr.Patch("/{propertyID}", updatePropertyHandler(svc, log))
		pr.Delete("/{propertyID}", deletePropertyHandler(svc, log))
	})
}

type createPropertyRequest struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	SizeAcres   float64 `json:"size_acres"`
	ClimateZone string  `json:"climate_zone"`
	SoilType    string  `json:"soil_type"`
	Notes       string  `json:"notes"`
}

type updatePropertyRequest struct {
	Name        *string  `json:"name"`
	Location    *string  `json:"location"`
	SizeAcres   *float64 `json:"size_acres"`
	ClimateZone *string  `json:"climate_zone"`
	SoilType    *string  `json:"soil_type"`
	Notes       *string  `json:"notes"`
}

type propertyResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	SizeAcres   float64   `json:"size_acres"`
	ClimateZone string    `json:"climate_zone"`
	SoilType    string    `json:"soil_type"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// createPropertyHandler godoc
// @Summary Crear propiedad
// @Tags properties
// @Accept json
// @Produce json
// @Param payload body createPropertyRequest true "Datos de la propiedad"
// @Success 201 {object} propertyResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Router /properties [post]
func createPropertyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req createPropertyRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		p, err := svc.Create(r.Context(), userID, CreateInput{
			Name:        req.Name,
			Location:    req.Location,
			SizeAcres:   req.SizeAcres,
			ClimateZone: req.ClimateZone,
			SoilType:    req.SoilType,
			Notes:       req.Notes,
		})
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}

		httpjson.Write(w, http.StatusCreated, toPropertyResponse(p))
	}
}

// listPropertiesHandler godoc
// @Summary Listar propiedades del usuario
// @Tags properties
// @Produce json
// @Success 200 {array} propertyResponse
// @Router /properties [get]
func listPropertiesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		items, err := svc.List(r.Context(), userID)
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}

		out := make([]propertyResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPropertyResponse(p))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// getPropertyHandler godoc
// @Summary Ver propiedad
// @Tags properties
// @Produce json
// @Param propertyID path string true "ID"
// @Success 200 {object} propertyResponse
// @Failure 404 {string} string "not found"
// @Router /properties/{propertyID} [get]
func getPropertyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		p, err := svc.Get(r.Context(), userID, chi.URLParam(r, "propertyID"))
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toPropertyResponse(p))
	}
}

// updatePropertyHandler godoc
// @Summary Editar propiedad
// @Tags properties
// @Accept json
// @Produce json
// @Param propertyID path string true "ID"
// @Param payload body updatePropertyRequest true "Campos a modificar; ausentes no se tocan"
// @Success 200 {object} propertyResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 404 {string} string "not found"
// @Router /properties/{propertyID} [patch]
func updatePropertyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req updatePropertyRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		p, err := svc.Update(r.Context(), userID, chi.URLParam(r, "propertyID"), UpdateInput{
			Name:        req.Name,
			Location:    req.Location,
			SizeAcres:   req.SizeAcres,
			ClimateZone: req.ClimateZone,
			SoilType:    req.SoilType,
			Notes:       req.Notes,
		})
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toPropertyResponse(p))
	}
}

// deletePropertyHandler godoc
// @Summary Borrar propiedad
// @Tags properties
// @Param propertyID path string true "ID"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /properties/{propertyID} [delete]
func deletePropertyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		if err := svc.Delete(r.Context(), userID, chi.URLParam(r, "propertyID")); err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toPropertyResponse(p Property) propertyResponse {
	return propertyResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Location:    p.Location,
		SizeAcres:   p.SizeAcres,
		ClimateZone: p.ClimateZone,
		SoilType:    p.SoilType,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
