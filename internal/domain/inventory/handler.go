package inventory

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
	r.Route("/inventory", func(ir chi.Router) {
		ir.Post("/", createItemHandler(svc, log))
		ir.Get("/", listItemsHandler(svc, log))
		ir.Get("/low-stock", lowStockHandler(svc, log))
		ir.Get("/{itemID}", getItemHandler(svc, log))
		ir.Patch("/{itemID}", updateItemHandler(svc, log))
		ir.Delete("/{itemID}", deleteItemHandler(svc, log))
	})
}

type createItemRequest struct {
	PropertyID   *string `json:"property_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	CurrentStock float64 `json:"current_stock"`
	Unit         string  `json:"unit"`
	ReorderPoint float64 `json:"reorder_point"`
	Supplier     string  `json:"supplier"`
	Notes        string  `json:"notes"`
}

type updateItemRequest struct {
	PropertyID   *string  `json:"property_id"`
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	CurrentStock *float64 `json:"current_stock"`
	Unit         *string  `json:"unit"`
	ReorderPoint *float64 `json:"reorder_point"`
	Supplier     *string  `json:"supplier"`
	Notes        *string  `json:"notes"`
}

type itemResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	PropertyID   *string   `json:"property_id,omitempty"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	CurrentStock float64   `json:"current_stock"`
	Unit         string    `json:"unit"`
	ReorderPoint float64   `json:"reorder_point"`
	Supplier     string    `json:"supplier"`
	Notes        string    `json:"notes"`
	LowStock     bool      `json:"low_stock"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// createItemHandler godoc
// @Summary Alta de ítem de inventario
// @Tags inventory
// @Accept json
// @Produce json
// @Param payload body createItemRequest true "Ítem"
// @Success 201 {object} itemResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Router /inventory [post]
func createItemHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req createItemRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		it, err := svc.Create(r.Context(), userID, CreateInput(req))
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toItemResponse(it))
	}
}

// listItemsHandler godoc
// @Summary Listar inventario
// @Tags inventory
// @Produce json
// @Param category query string false "Filtra por categoría"
// @Param property_id query string false "Filtra por propiedad"
// @Success 200 {array} itemResponse
// @Router /inventory [get]
func listItemsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		items, err := svc.List(r.Context(), userID, ListFilter{
			Category:   r.URL.Query().Get("category"),
			PropertyID: strings.TrimSpace(r.URL.Query().Get("property_id")),
		})
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		writeItems(w, items)
	}
}

// lowStockHandler godoc
// @Summary Ítems a reponer
// @Description current_stock <= reorder_point
// @Tags inventory
// @Produce json
// @Success 200 {array} itemResponse
// @Router /inventory/low-stock [get]
func lowStockHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		items, err := svc.LowStock(r.Context(), userID)
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		writeItems(w, items)
	}
}

// getItemHandler godoc
// @Summary Ver ítem
// @Tags inventory
// @Produce json
// @Param itemID path string true "ID"
// @Success 200 {object} itemResponse
// @Failure 404 {string} string "not found"
// @Router /inventory/{itemID} [get]
func getItemHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		it, err := svc.Get(r.Context(), userID, chi.URLParam(r, "itemID"))
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toItemResponse(it))
	}
}

// updateItemHandler godoc
// @Summary Editar ítem
// @Tags inventory
// @Accept json
// @Produce json
// @Param itemID path string true "ID"
// @Param payload body updateItemRequest true "Campos a modificar; ausentes no se tocan"
// @Success 200 {object} itemResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 404 {string} string "not found"
// @Router /inventory/{itemID} [patch]
func updateItemHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req updateItemRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		it, err := svc.Update(r.Context(), userID, chi.URLParam(r, "itemID"), UpdateInput(req))
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toItemResponse(it))
	}
}

// deleteItemHandler godoc
// @Summary Borrar ítem
// @Tags inventory
// @Param itemID path string true "ID"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /inventory/{itemID} [delete]
func deleteItemHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		if err := svc.Delete(r.Context(), userID, chi.URLParam(r, "itemID")); err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeItems(w http.ResponseWriter, items []Item) {
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	httpjson.Write(w, http.StatusOK, out)
}

func toItemResponse(it Item) itemResponse {
	return itemResponse{
		ID:           it.ID,
		UserID:       it.UserID,
		PropertyID:   it.PropertyID,
		Name:         it.Name,
		Category:     it.Category,
		CurrentStock: it.CurrentStock,
		Unit:         it.Unit,
		ReorderPoint: it.ReorderPoint,
		Supplier:     it.Supplier,
		Notes:        it.Notes,
		LowStock:     it.LowStock(),
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}
