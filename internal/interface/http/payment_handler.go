package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/qos-portal/internal/application"
	"github.com/oksasatya/qos-portal/internal/domain/contract"
	"github.com/oksasatya/qos-portal/pkg/helpers"
	"github.com/oksasatya/qos-portal/pkg/response"
)

const (
	PaymentSuccessPath = "/payment/success"
	PaymentFailurePath = "/payment/failure"
)

type PaymentHandler struct {
	Base
	Svc *application.PaymentService
}

func NewPaymentHandler(svc *application.PaymentService, cookies *helpers.Manager, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{Base: Base{Logger: logger, Cookies: cookies}, Svc: svc}
}

// List GET /api/admin/payments
func (h *PaymentHandler) List(c *gin.Context) {
	var q contract.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}
	res, err := h.Svc.List(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeList(c, res, "payments")
}

// Get GET /api/admin/payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	out, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "payment", nil)
}

// Checkout POST /api/payments. The client follows paymentUrl to the gateway.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var body contract.CreatePaymentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.bindError(c, err)
		return
	}
	out, err := h.Svc.Checkout(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, out, "checkout started", nil)
}

// Return GET /api/payment/return
func (h *PaymentHandler) Return(c *gin.Context) { h.settle(c, false) }

// RenewReturn GET /api/payment/renew-return
func (h *PaymentHandler) RenewReturn(c *gin.Context) { h.settle(c, true) }

// settle forwards the gateway's query unchanged to the result page. The
// gateway signature is not checked here; the backend confirms the payment.
func (h *PaymentHandler) settle(c *gin.Context, renewal bool) {
	q := c.Request.URL.Query()
	ok := PaymentSucceeded(q.Get("status"))
	h.Svc.Settled(c.Request.Context())

	helpers.LogInfo(h.Logger, "payment return", logrus.Fields{
		"order_id": q.Get("orderId"),
		"status":   q.Get("status"),
		"success":  ok,
		"renewal":  renewal,
	})

	target := PaymentFailurePath
	if ok {
		target = PaymentSuccessPath
	}
	if raw := c.Request.URL.RawQuery; raw != "" {
		target += "?" + raw
	}
	c.Redirect(http.StatusFound, target)
}

// PaymentSucceeded reports whether a gateway status means paid.
func PaymentSucceeded(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "success", "paid", "00":
		return true
	default:
		return false
	}
}
