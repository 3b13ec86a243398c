package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/qos-portal/internal/interface/http"
	"github.com/oksasatya/qos-portal/internal/interface/middleware"
	"github.com/oksasatya/qos-portal/pkg/helpers"
)

// PageModule registers the server-rendered pages behind the session gate.
type PageModule struct {
	Handler *handlers.PageHandler
}

func (m *PageModule) Register(api, pages *gin.RouterGroup) {
	pages.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, middleware.DashboardPath) })
	pages.GET("/login", m.Handler.Login)
	pages.GET("/register", m.Handler.Register)
	pages.GET("/forgot-password", m.Handler.ForgotPassword)
	pages.GET("/dashboard", m.Handler.Dashboard)
	pages.GET("/payment/success", m.Handler.PaymentSuccess)
	pages.GET("/payment/failure", m.Handler.PaymentFailure)
	pages.GET("/account", m.Handler.Account)

	admin := pages.Group("/admin", middleware.PageRole(helpers.RoleAdmin, m.Handler.Cookies))
	{
		admin.GET("", m.Handler.Admin)
		admin.GET("/users", m.Handler.AdminUsers())
		admin.GET("/service-plans", m.Handler.AdminServicePlans())
		admin.GET("/subscriptions", m.Handler.AdminSubscriptions())
		admin.GET("/reviews", m.Handler.AdminReviews())
		admin.GET("/qos-instances", m.Handler.AdminQosInstances())
		admin.GET("/payments", m.Handler.AdminPayments())
	}

	portal := pages.Group("/portal", middleware.PageRole(helpers.RoleCustomer, m.Handler.Cookies))
	{
		portal.GET("", m.Handler.Portal)
		portal.GET("/plans", m.Handler.PortalPlans)
		portal.GET("/payments", m.Handler.PortalPayments())
	}
}
