package animals

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
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc, log))
		ar.Get("/", listAnimalsHandler(svc, log))
		ar.Get("/{animalID}", getAnimalHandler(svc, log))
		ar.Patch("/{animalID}", updateAnimalHandler(svc, log))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc, log))
	})
}

type createAnimalRequest struct {
	PropertyID *string `json:"property_id"`
	Name       string  `json:"name"`
	Species    string  `json:"species"`
	Breed      string  `json:"breed"`
	Sex        Sex     `json:"sex" enums:"male,female,unknown"`
	BirthDate  string  `json:"birth_date"` // YYYY-MM-DD opcional
	Notes      string  `json:"notes"`
}

type updateAnimalRequest struct {
	PropertyID *string `json:"property_id"` // "" desasocia
	Name       *string `json:"name"`
	Species    *string `json:"species"`
	Breed      *string `json:"breed"`
	Sex        *Sex    `json:"sex"`
	BirthDate  *string `json:"birth_date"` // "" borra
	Notes      *string `json:"notes"`
}

type animalResponse struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	PropertyID *string        `json:"property_id,omitempty"`
	Name       string         `json:"name"`
	Species    string         `json:"species"`
	Breed      string         `json:"breed"`
	Sex        Sex            `json:"sex"`
	BirthDate  *httpjson.Date `json:"birth_date,omitempty"`
	Notes      string         `json:"notes"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Description Alta de un animal del usuario. property_id es opcional pero debe ser propia.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Datos del animal; birth_date YYYY-MM-DD"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Router /animals [post]
func createAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req createAnimalRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		bd, err := httpjson.ParseOptionalDate("birth_date", req.BirthDate)
		if err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		a, err := svc.Create(r.Context(), userID, CreateInput{
			PropertyID: req.PropertyID,
			Name:       req.Name,
			Species:    req.Species,
			Breed:      req.Breed,
			Sex:        req.Sex,
			BirthDate:  bd,
			Notes:      req.Notes,
		})
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Tags animals
// @Produce json
// @Param property_id query string false "Filtra por propiedad"
// @Param species query string false "Filtra por especie"
// @Success 200 {array} animalResponse
// @Router /animals [get]
func listAnimalsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		items, err := svc.List(r.Context(), userID, ListFilter{
			PropertyID: strings.TrimSpace(r.URL.Query().Get("property_id")),
			Species:    r.URL.Query().Get("species"),
		})
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Ver animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "not found"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		a, err := svc.Get(r.Context(), userID, chi.URLParam(r, "animalID"))
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Editar animal
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "ID"
// @Param payload body updateAnimalRequest true "Campos a modificar; ausentes no se tocan"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 404 {string} string "not found"
// @Router /animals/{animalID} [patch]
func updateAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req updateAnimalRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		in := UpdateInput{
			PropertyID: req.PropertyID,
			Name:       req.Name,
			Species:    req.Species,
			Breed:      req.Breed,
			Sex:        req.Sex,
			Notes:      req.Notes,
		}
		if req.BirthDate != nil {
			bd, err := httpjson.ParseOptionalDate("birth_date", *req.BirthDate)
			if err != nil {
				httpjson.BadRequest(w, err.Error())
				return
			}
			in.BirthDate = bd
			in.ClearBirthDate = bd == nil
		}

		a, err := svc.Update(r.Context(), userID, chi.URLParam(r, "animalID"), in)
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toAnimalResponse(a))
	}
}

// deleteAnimalHandler godoc
// @Summary Borrar animal
// @Tags animals
// @Param animalID path string true "ID"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /animals/{animalID} [delete]
func deleteAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		if err := svc.Delete(r.Context(), userID, chi.URLParam(r, "animalID")); err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		PropertyID: a.PropertyID,
		Name:       a.Name,
		Species:    a.Species,
		Breed:      a.Breed,
		Sex:        a.Sex,
		BirthDate:  httpjson.DatePtr(a.BirthDate),
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
