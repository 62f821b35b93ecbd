package finance

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
	r.Route("/finance", func(fr chi.Router) {
		fr.Get("/summary", summaryHandler(svc, log))

		fr.Route("/categories", func(cr chi.Router) {
			cr.Post("/", createCategoryHandler(svc, log))
			cr.Get("/", listCategoriesHandler(svc, log))
			cr.Patch("/{categoryID}", updateCategoryHandler(svc, log))
			cr.Delete("/{categoryID}", deleteCategoryHandler(svc, log))
		})

		fr.Route("/transactions", func(tr chi.Router) {
			tr.Post("/", createTransactionHandler(svc, log))
			tr.Get("/", listTransactionsHandler(svc, log))
			tr.Get("/{transactionID}", getTransactionHandler(svc, log))
			tr.Patch("/{transactionID}", updateTransactionHandler(svc, log))
			tr.Delete("/{transactionID}", deleteTransactionHandler(svc, log))
		})
	})
}

type categoryRequest struct {
	Name string `json:"name"`
	Type Kind   `json:"type" enums:"income,expense"`
}

type categoryPatchRequest struct {
	Name *string `json:"name"`
	Type *Kind   `json:"type"`
}

type categoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      Kind      `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type transactionRequest struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Type        Kind    `json:"type" enums:"income,expense"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Notes       string  `json:"notes"`
	CategoryID  *string `json:"category_id"`
	PropertyID  *string `json:"property_id"`
}

type transactionPatchRequest struct {
	Date        *string  `json:"date"`
	Type        *Kind    `json:"type"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	Notes       *string  `json:"notes"`
	CategoryID  *string  `json:"category_id"`
	PropertyID  *string  `json:"property_id"`
}

type transactionResponse struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	Date        httpjson.Date `json:"date"`
	Type        Kind          `json:"type"`
	Amount      float64       `json:"amount"`
	Description string        `json:"description"`
	Notes       string        `json:"notes,omitempty"`
	CategoryID  *string       `json:"category_id,omitempty"`
	PropertyID  *string       `json:"property_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// summaryHandler godoc
// @Summary Balance
// @Description Ingresos, egresos y balance sobre las transacciones que cumplen los filtros.
// @Tags finance
// @Produce json
// @Param type query string false "income | expense"
// @Param category_id query string false "Categoría"
// @Param property_id query string false "Propiedad"
// @Param start_date query string false "Desde (YYYY-MM-DD, inclusive)"
// @Param end_date query string false "Hasta (YYYY-MM-DD, inclusive)"
// @Success 200 {object} Summary
// @Failure 400 {string} string "filtro inválido"
// @Router /finance/summary [get]
func summaryHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		filter, err := parseTransactionFilter(r)
		if err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		sum, err := svc.Summary(r.Context(), userID, filter)
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, sum)
	}
}

// createCategoryHandler godoc
// @Summary Crear categoría
// @Tags finance
// @Accept json
// @Produce json
// @Param payload body categoryRequest true "Categoría"
// @Success 201 {object} categoryResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Router /finance/categories [post]
func createCategoryHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req categoryRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		c, err := svc.CreateCategory(r.Context(), userID, CategoryInput{Name: req.Name, Kind: req.Type})
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toCategoryResponse(c))
	}
}

// listCategoriesHandler godoc
// @Summary Listar categorías
// @Tags finance
// @Produce json
// @Param type query string false "income | expense"
// @Success 200 {array} categoryResponse
// @Router /finance/categories [get]
func listCategoriesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		items, err := svc.ListCategories(r.Context(), userID, Kind(strings.TrimSpace(r.URL.Query().Get("type"))))
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}

		out := make([]categoryResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCategoryResponse(c))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// updateCategoryHandler godoc
// @Summary Editar categoría
// @Tags finance
// @Accept json
// @Produce json
// @Param categoryID path string true "ID"
// @Param payload body categoryPatchRequest true "Campos a modificar; ausentes no se tocan"
// @Success 200 {object} categoryResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 404 {string} string "not found"
// @Router /finance/categories/{categoryID} [patch]
func updateCategoryHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req categoryPatchRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		c, err := svc.UpdateCategory(r.Context(), userID, chi.URLParam(r, "categoryID"), CategoryPatch{Name: req.Name, Kind: req.Type})
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toCategoryResponse(c))
	}
}

// deleteCategoryHandler godoc
// @Summary Borrar categoría
// @Tags finance
// @Param categoryID path string true "ID"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /finance/categories/{categoryID} [delete]
func deleteCategoryHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		if err := svc.DeleteCategory(r.Context(), userID, chi.URLParam(r, "categoryID")); err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// createTransactionHandler godoc
// @Summary Registrar transacción
// @Tags finance
// @Accept json
// @Produce json
// @Param payload body transactionRequest true "Transacción; amount > 0"
// @Success 201 {object} transactionResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Router /finance/transactions [post]
func createTransactionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req transactionRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}
		date, err := httpjson.ParseDate(req.Date)
		if err != nil {
			httpjson.BadRequest(w, "date must be YYYY-MM-DD")
			return
		}

		tx, err := svc.CreateTransaction(r.Context(), userID, TransactionInput{
			Date:        date,
			Kind:        req.Type,
			Amount:      req.Amount,
			Description: req.Description,
			Notes:       req.Notes,
			CategoryID:  req.CategoryID,
			PropertyID:  req.PropertyID,
		})
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusCreated, toTransactionResponse(tx))
	}
}

// listTransactionsHandler godoc
// @Summary Listar transacciones
// @Tags finance
// @Produce json
// @Param type query string false "income | expense"
// @Param category_id query string false "Categoría"
// @Param property_id query string false "Propiedad"
// @Param start_date query string false "Desde (YYYY-MM-DD, inclusive)"
// @Param end_date query string false "Hasta (YYYY-MM-DD, inclusive)"
// @Success 200 {array} transactionResponse
// @Router /finance/transactions [get]
func listTransactionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		filter, err := parseTransactionFilter(r)
		if err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		items, err := svc.ListTransactions(r.Context(), userID, filter)
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}

		out := make([]transactionResponse, 0, len(items))
		for _, tx := range items {
			out = append(out, toTransactionResponse(tx))
		}
		httpjson.Write(w, http.StatusOK, out)
	}
}

// getTransactionHandler godoc
// @Summary Ver transacción
// @Tags finance
// @Produce json
// @Param transactionID path string true "ID"
// @Success 200 {object} transactionResponse
// @Failure 404 {string} string "not found"
// @Router /finance/transactions/{transactionID} [get]
func getTransactionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		tx, err := svc.GetTransaction(r.Context(), userID, chi.URLParam(r, "transactionID"))
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toTransactionResponse(tx))
	}
}

// updateTransactionHandler godoc
// @Summary Editar transacción
// @Tags finance
// @Accept json
// @Produce json
// @Param transactionID path string true "ID"
// @Param payload body transactionPatchRequest true "Campos a modificar; ausentes no se tocan"
// @Success 200 {object} transactionResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 404 {string} string "not found"
// @Router /finance/transactions/{transactionID} [patch]
func updateTransactionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		var req transactionPatchRequest
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.BadRequest(w, err.Error())
			return
		}

		in := TransactionPatch{
			Kind:        req.Type,
			Amount:      req.Amount,
			Description: req.Description,
			Notes:       req.Notes,
			CategoryID:  req.CategoryID,
			PropertyID:  req.PropertyID,
		}
		if req.Date != nil {
			d, err := httpjson.ParseDate(*req.Date)
			if err != nil {
				httpjson.BadRequest(w, "date must be YYYY-MM-DD")
				return
			}
			in.Date = &d
		}

		tx, err := svc.UpdateTransaction(r.Context(), userID, chi.URLParam(r, "transactionID"), in)
		if err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		httpjson.Write(w, http.StatusOK, toTransactionResponse(tx))
	}
}

// deleteTransactionHandler godoc
// @Summary Borrar transacción
// @Tags finance
// @Param transactionID path string true "ID"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /finance/transactions/{transactionID} [delete]
func deleteTransactionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())

		if err := svc.DeleteTransaction(r.Context(), userID, chi.URLParam(r, "transactionID")); err != nil {
			httpjson.Error(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseTransactionFilter(r *http.Request) (TransactionFilter, error) {
	q := r.URL.Query()
	f := TransactionFilter{
		Kind:       Kind(strings.TrimSpace(q.Get("type"))),
		CategoryID: strings.TrimSpace(q.Get("category_id")),
		PropertyID: strings.TrimSpace(q.Get("property_id")),
	}

	var err error
	if f.StartDate, err = httpjson.ParseOptionalDate("start_date", q.Get("start_date")); err != nil {
		return TransactionFilter{}, err
	}
	if f.EndDate, err = httpjson.ParseOptionalDate("end_date", q.Get("end_date")); err != nil {
		return TransactionFilter{}, err
	}
	return f, nil
}

func toCategoryResponse(c Category) categoryResponse {
	return categoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      c.Kind,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toTransactionResponse(tx Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Date:        httpjson.Date(tx.Date),
		Type:        tx.Kind,
		Amount:      tx.Amount,
		Description: tx.Description,
		Notes:       tx.Notes,
		CategoryID:  tx.CategoryID,
		PropertyID:  tx.PropertyID,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}
