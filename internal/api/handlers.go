package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/remessas/screening-service/internal/domain"
	"github.com/remessas/screening-service/internal/pkg/logger"
	"github.com/remessas/screening-service/internal/screening"
	"github.com/remessas/screening-service/internal/store"
)

// Handler wires the screening engine and history store to the HTTP routes.
// The boundary layer owns request validation: the engine assumes
// well-formed input.
type Handler struct {
	engine *screening.Engine
	store  *store.MemoryStore
	log    *logger.Logger
}

// BatchRequest is a batch of transactions to screen.
type BatchRequest struct {
	Transactions []domain.TransactionRequest `json:"transactions"`
}

// NewHandler creates the API handler.
func NewHandler(engine *screening.Engine, st *store.MemoryStore, log *logger.Logger) *Handler {
	return &Handler{
		engine: engine,
		store:  st,
		log:    log.Named("api"),
	}
}

// ScreenTransaction handles POST /api/screening.
func (h *Handler) ScreenTransaction(c echo.Context) error {
	var req domain.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := validateRequest(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Timestamp = req.Timestamp.UTC()

	result, err := h.engine.Screen(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ScreenBatch handles POST /api/screening/batch.
func (h *Handler) ScreenBatch(c echo.Context) error {
	var batch BatchRequest
	if err := c.Bind(&batch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	for i := range batch.Transactions {
		if err := validateRequest(batch.Transactions[i]); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("transaction %d: %s", i, err.Error()))
		}
		batch.Transactions[i].Timestamp = batch.Transactions[i].Timestamp.UTC()
	}

	result, err := h.engine.ScreenBatch(c.Request().Context(), batch.Transactions)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// GetCustomerTransactions handles GET /api/transactions/:customer.
// The path parameter is the sender name; lookups are case- and
// whitespace-insensitive. The window defaults to the last 24 hours.
func (h *Handler) GetCustomerTransactions(c echo.Context) error {
	customer := c.Param("customer")
	if decoded, err := url.PathUnescape(customer); err == nil {
		customer = decoded
	}

	hours := 24
	if raw := c.QueryParam("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "hours must be a positive integer")
		}
		hours = parsed
	}

	since := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	txns := h.store.QueryBySender(customer, since)
	if txns == nil {
		txns = []domain.StoredTransaction{}
	}
	return c.JSON(http.StatusOK, txns)
}

// GetRules handles GET /api/rules.
func (h *Handler) GetRules(c echo.Context) error {
	return c.JSON(http.StatusOK, h.engine.Rules())
}

// UpdateRules handles PUT /api/rules. The replacement is all-or-nothing:
// an invalid config is rejected and the previous thresholds stay in effect.
func (h *Handler) UpdateRules(c echo.Context) error {
	var cfg domain.RulesConfig
	if err := c.Bind(&cfg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := h.engine.ReplaceRules(cfg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, cfg)
}

// GetAuditLog handles GET /api/audit with optional transaction_id,
// from_date and to_date (RFC3339) filters.
func (h *Handler) GetAuditLog(c echo.Context) error {
	txID := uuid.Nil
	if raw := c.QueryParam("transaction_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "transaction_id must be a UUID")
		}
		txID = parsed
	}

	from, err := parseTimeParam(c.QueryParam("from_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "from_date must be RFC3339")
	}
	to, err := parseTimeParam(c.QueryParam("to_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "to_date must be RFC3339")
	}

	entries := h.store.QueryAudit(txID, from, to)
	if entries == nil {
		entries = []domain.AuditEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}

// Health handles GET /health.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func parseTimeParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// validateRequest rejects malformed transactions before they reach the
// engine: non-empty string fields, positive amount, present timestamp.
func validateRequest(req domain.TransactionRequest) error {
	switch {
	case strings.TrimSpace(req.SenderName) == "":
		return fmt.Errorf("sender_name is required")
	case strings.TrimSpace(req.RecipientName) == "":
		return fmt.Errorf("recipient_name is required")
	case !req.Amount.IsPositive():
		return fmt.Errorf("amount must be positive")
	case strings.TrimSpace(req.Currency) == "":
		return fmt.Errorf("currency is required")
	case strings.TrimSpace(req.DestinationCountry) == "":
		return fmt.Errorf("destination_country is required")
	case req.Timestamp.IsZero():
		return fmt.Errorf("timestamp is required")
	}
	return nil
}
