package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/qos-portal/internal/application"
	"github.com/oksasatya/qos-portal/internal/domain/contract"
	"github.com/oksasatya/qos-portal/internal/domain/entity"
	"github.com/oksasatya/qos-portal/pkg/helpers"
	"github.com/oksasatya/qos-portal/pkg/response"
)

// MeHandler serves the signed-in customer's own data.
type MeHandler struct {
	Base
	Svc *application.Services
}

func NewMeHandler(svc *application.Services, cookies *helpers.Manager, logger *logrus.Logger) *MeHandler {
	return &MeHandler{Base: Base{Logger: logger, Cookies: cookies}, Svc: svc}
}

// Profile GET /api/me
func (h *MeHandler) Profile(c *gin.Context) {
	u, err := h.Svc.Auth.Me(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u, "profile", nil)
}

// UpdateProfile PUT /api/me
func (h *MeHandler) UpdateProfile(c *gin.Context) {
	var body contract.UpdateMeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.bindError(c, err)
		return
	}
	u, err := h.Svc.Users.UpdateMe(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u, "profile updated", nil)
}

// ChangePassword PUT /api/me/password
func (h *MeHandler) ChangePassword(c *gin.Context) {
	var body contract.ChangePasswordBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.bindError(c, err)
		return
	}
	msg, err := h.Svc.Users.ChangePassword(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, msg, nil)
}

// Subscriptions GET /api/me/subscriptions
func (h *MeHandler) Subscriptions(c *gin.Context) {
	var q contract.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}
	res, err := h.Svc.Subscriptions.ListMine(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeList(c, res, "subscriptions")
}

// CancelSubscription PUT /api/me/subscriptions/:id/cancel
func (h *MeHandler) CancelSubscription(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	out, err := h.Svc.Subscriptions.Cancel(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "subscription cancelled", nil)
}

// Payments GET /api/me/payments
func (h *MeHandler) Payments(c *gin.Context) {
	var q contract.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}
	res, err := h.Svc.Payments.ListMine(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeList(c, res, "payments")
}

// Reviews GET /api/me/reviews. The backend scopes the list to the caller's token.
func (h *MeHandler) Reviews(c *gin.Context) {
	var q contract.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}
	res, err := h.Svc.Reviews.List(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeList(c, res, "reviews")
}

// CreateReview POST /api/me/reviews
func (h *MeHandler) CreateReview(c *gin.Context) {
	var body contract.CreateReviewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.bindError(c, err)
		return
	}
	out, err := h.Svc.Reviews.Create(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, out, "review submitted", nil)
}

// ServicePlans GET /api/service-plans lists the plans on sale.
func (h *MeHandler) ServicePlans(c *gin.Context) {
	var q contract.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindError(c, err)
		return
	}
	q.Status = string(entity.PlanActive)
	res, err := h.Svc.ServicePlans.List(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err)
		return
	}
	writeList(c, res, "service plans")
}
