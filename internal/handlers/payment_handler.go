package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"volunteer-connect/internal/models"
	"volunteer-connect/internal/repository"
	"volunteer-connect/internal/services"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// GetPayments returns payments, filtered by ?user_id=, ?opportunity_id= and ?payment_status=
// GET /payments
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	var filter repository.PaymentFilter
	var err error
	if filter.UserID, err = queryID(c, "user_id"); err != nil {
		respondError(c, err)
		return
	}
	if filter.OpportunityID, err = queryID(c, "opportunity_id"); err != nil {
		respondError(c, err)
		return
	}
	if status := c.Query("payment_status"); status != "" {
		s := models.PaymentStatus(status)
		filter.Status = &s
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]models.PaymentResponse, len(payments))
	for i := range payments {
		resp[i] = payments[i].ToResponse()
	}
	c.JSON(http.StatusOK, resp)
}

// GetPaymentByID returns one payment
// GET /payments/:id
func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	paymentID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), paymentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment.ToResponse())
}

// CreatePayment records a payment; amount must be positive
// POST /payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req services.CreatePaymentInput
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment.ToResponse())
}

// UpdatePayment changes amount and/or payment_status
// PATCH /payments/:id
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	paymentID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req services.UpdatePaymentInput
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), paymentID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment.ToResponse())
}

// DeletePayment removes a payment
// DELETE /payments/:id
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	paymentID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), paymentID); err != nil {
		respondError(c, err)
		return
	}

	deleted(c, "Payment")
}
