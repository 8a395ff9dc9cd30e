package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"handpay/internal/service"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// PaymentRequest represents a payment request. Amount is a pointer so that
// zero passes the required check.
type PaymentRequest struct {
	Payer  string   `json:"payer" validate:"required"`
	Payee  string   `json:"payee" validate:"required"`
	Amount *float64 `json:"amount" validate:"required"`
}

// HistoryEntry is one line of a payer's history.
type HistoryEntry struct {
	Date   string  `json:"date"`
	Payee  string  `json:"payee"`
	Amount float64 `json:"amount"`
}

// Pay godoc
// @Summary Record a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param request body PaymentRequest true "Payment data"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/payments [post]
func (h *PaymentHandler) Pay(c echo.Context) error {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("INVALID_REQUEST", "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return badRequest("VALIDATION_ERROR", err.Error())
	}

	tx, err := h.paymentService.Pay(c.Request().Context(), req.Payer, req.Payee, *req.Amount)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, StatusResponse{
		Status:  "validated",
		Message: fmt.Sprintf("payment of %s€ accepted", decimal.NewFromFloat(tx.Amount).String()),
	})
}

// History godoc
// @Summary List a payer's transactions, newest first
// @Tags payments
// @Produce json
// @Param name path string true "Payer name"
// @Success 200 {array} HistoryEntry
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/history/{name} [get]
func (h *PaymentHandler) History(c echo.Context) error {
	txs, err := h.paymentService.History(c.Request().Context(), c.Param("name"))
	if err != nil {
		return fail(c, err)
	}

	entries := make([]HistoryEntry, 0, len(txs))
	for _, tx := range txs {
		entries = append(entries, HistoryEntry{
			Date:   tx.Timestamp,
			Payee:  tx.PayeeName,
			Amount: tx.Amount,
		})
	}
	return c.JSON(http.StatusOK, entries)
}
