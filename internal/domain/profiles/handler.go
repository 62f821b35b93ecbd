package profiles

import (
	"net/http"
	"time"

	"homestead-architect/internal/middleware"
	"homestead-architect/internal/platform/httpjson"
	"homestead-architect/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/me/profile", getProfileHandler(svc, log))
	r.Put("/me/profile", putProfileHandler(svc, log))
}

type profileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type profileResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// getProfileHandler godoc
// @Summary Perfil del usuario autenticado
// @Tags profile
// @Produce json
// @Success 200 {object} profileResponse
// @Failure 404 {string} string "profile not found"
// @Router /me/profile [get]
func getProfileHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		p, err := svc.Get(r.Context(), userID)
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toProfileResponse(r, p))
	}
}

// putProfileHandler godoc
// @Summary Crear o reemplazar perfil
// @Tags profile
// @Accept json
// @Produce json
// @Param payload body profileRequest true "Nombre y apellido, 1..50 caracteres"
// @Success 200 {object} profileResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Router /me/profile [put]
func putProfileHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req profileRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		p, err := svc.Upsert(r.Context(), userID, UpsertInput(req))
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toProfileResponse(r, p))
	}
}

// el email viene del token, no se guarda
func toProfileResponse(r *http.Request, p Profile) profileResponse {
	out := profileResponse{
		UserID:    p.UserID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if c, ok := middleware.GetClaims(r.Context()); ok {
		out.Email = c.Email
	}
	return out
}
