package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/qos-portal/internal/application"
	"github.com/oksasatya/qos-portal/internal/domain/contract"
	"github.com/oksasatya/qos-portal/internal/domain/entity"
	"github.com/oksasatya/qos-portal/pkg/helpers"
	"github.com/oksasatya/qos-portal/pkg/pagination"
	"github.com/oksasatya/qos-portal/pkg/response"
)

type crudService[T any, C any, U any] interface {
	List(ctx context.Context, q contract.ListQuery) (*contract.ListRes[T], error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, body C) (*T, error)
	Update(ctx context.Context, id int64, body U) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// ResourceHandler exposes one admin resource as JSON CRUD.
type ResourceHandler[T any, C any, U any] struct {
	Base
	Svc  crudService[T, C, U]
	Name string
}

func NewResourceHandler[T any, C any, U any](svc crudService[T, C, U], name string, cookies *helpers.Manager, logger *logrus.Logger) *ResourceHandler[T, C, U] {
	return &ResourceHandler[T, C, U]{Base: Base{Logger: logger, Cookies: cookies}, Svc: svc, Name: name}
}

func (h *ResourceHandler[T, C, U]) List(c *gin.Context) {
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
	writeList(c, res, h.Name)
}

func (h *ResourceHandler[T, C, U]) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	out, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, h.Name, nil)
}

func (h *ResourceHandler[T, C, U]) Create(c *gin.Context) {
	var body C
	if err := c.ShouldBindJSON(&body); err != nil {
		h.bindError(c, err)
		return
	}
	out, err := h.Svc.Create(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, out, h.Name+" created", nil)
}

func (h *ResourceHandler[T, C, U]) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var body U
	if err := c.ShouldBindJSON(&body); err != nil {
		h.bindError(c, err)
		return
	}
	out, err := h.Svc.Update(c.Request.Context(), id, body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, h.Name+" updated", nil)
}

func (h *ResourceHandler[T, C, U]) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"id": id}, h.Name+" deleted", nil)
}

// Mount registers the five CRUD routes on g.
func (h *ResourceHandler[T, C, U]) Mount(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func writeList[T any](c *gin.Context, res *contract.ListRes[T], msg string) {
	response.Success(c, http.StatusOK, res.Data, msg, pagination.Meta{
		Page:       res.Page,
		Limit:      res.Limit,
		TotalItems: res.TotalItems,
		TotalPages: res.TotalPages,
	})
}

// QosInstanceHandler adds the on-demand health probe.
type QosInstanceHandler struct {
	*ResourceHandler[entity.QosInstance, contract.CreateQosInstanceBody, contract.UpdateQosInstanceBody]
	Svc *application.QosInstanceService
}

func NewQosInstanceHandler(svc *application.QosInstanceService, cookies *helpers.Manager, logger *logrus.Logger) *QosInstanceHandler {
	return &QosInstanceHandler{
		ResourceHandler: NewResourceHandler[entity.QosInstance, contract.CreateQosInstanceBody, contract.UpdateQosInstanceBody](svc, "qos instance", cookies, logger),
		Svc:             svc,
	}
}

// HealthCheck POST /api/admin/qos-instances/:id/health-check
func (h *QosInstanceHandler) HealthCheck(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	out, err := h.Svc.HealthCheck(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "health check complete", nil)
}

// SubscriptionHandler adds cancellation.
type SubscriptionHandler struct {
	*ResourceHandler[entity.Subscription, contract.CreateSubscriptionBody, contract.UpdateSubscriptionBody]
	Svc *application.SubscriptionService
}

func NewSubscriptionHandler(svc *application.SubscriptionService, cookies *helpers.Manager, logger *logrus.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		ResourceHandler: NewResourceHandler[entity.Subscription, contract.CreateSubscriptionBody, contract.UpdateSubscriptionBody](svc, "subscription", cookies, logger),
		Svc:             svc,
	}
}

// Cancel PUT .../subscriptions/:id/cancel
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	out, err := h.Svc.Cancel(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "subscription cancelled", nil)
}
