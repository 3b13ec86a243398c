package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/qos-portal/internal/domain/contract"
	"github.com/oksasatya/qos-portal/internal/domain/entity"
	handlers "github.com/oksasatya/qos-portal/internal/interface/http"
	"github.com/oksasatya/qos-portal/internal/interface/middleware"
	"github.com/oksasatya/qos-portal/pkg/helpers"
)

// AdminModule exposes admin CRUD under /api/admin for ADMIN sessions.
type AdminModule struct {
	Users         *handlers.ResourceHandler[entity.User, contract.CreateUserBody, contract.UpdateUserBody]
	ServicePlans  *handlers.ResourceHandler[entity.ServicePlan, contract.CreateServicePlanBody, contract.UpdateServicePlanBody]
	Subscriptions *handlers.SubscriptionHandler
	Reviews       *handlers.ResourceHandler[entity.Review, contract.CreateReviewBody, contract.UpdateReviewBody]
	QosInstances  *handlers.QosInstanceHandler
	Payments      *handlers.PaymentHandler
}

func (m *AdminModule) Register(api, pages *gin.RouterGroup) {
	admin := api.Group("/admin")
	admin.Use(
		middleware.RequireSession(),
		middleware.RequireRole(helpers.RoleAdmin),
		limit(300, time.Minute, middleware.KeyBySession()),
	)

	m.Users.Mount(admin.Group("/users"))
	m.ServicePlans.Mount(admin.Group("/service-plans"))
	m.Reviews.Mount(admin.Group("/reviews"))

	subs := admin.Group("/subscriptions")
	m.Subscriptions.Mount(subs)
	subs.PUT("/:id/cancel", m.Subscriptions.Cancel)

	qos := admin.Group("/qos-instances")
	m.QosInstances.Mount(qos)
	qos.POST("/:id/health-check", limit(30, time.Minute, middleware.KeyBySession()), m.QosInstances.HealthCheck)

	payments := admin.Group("/payments")
	payments.GET("", m.Payments.List)
	payments.GET("/:id", m.Payments.Get)
}
