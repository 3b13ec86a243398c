package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/qos-portal/internal/interface/http"
	"github.com/oksasatya/qos-portal/internal/interface/middleware"
)

// CustomerModule serves the signed-in user's own data and checkout.
// Public: GET /api/service-plans
// Session: /api/me..., POST /api/payments, POST /api/media/images
type CustomerModule struct {
	Me       *handlers.MeHandler
	Payments *handlers.PaymentHandler
	Media    *handlers.MediaHandler
}

func (m *CustomerModule) Register(api, pages *gin.RouterGroup) {
	api.GET("/service-plans", limit(120, time.Minute, middleware.KeyByIP()), m.Me.ServicePlans)

	auth := api.Group("/")
	auth.Use(middleware.RequireSession(), limit(300, time.Minute, middleware.KeyBySession()))
	{
		auth.GET("/me", m.Me.Profile)
		auth.PUT("/me", m.Me.UpdateProfile)
		auth.PUT("/me/password", strictLimit(5, time.Minute, middleware.KeyBySession()), m.Me.ChangePassword)
		auth.GET("/me/subscriptions", m.Me.Subscriptions)
		auth.PUT("/me/subscriptions/:id/cancel", m.Me.CancelSubscription)
		auth.GET("/me/payments", m.Me.Payments)
		auth.GET("/me/reviews", m.Me.Reviews)
		auth.POST("/me/reviews", m.Me.CreateReview)

		auth.POST("/payments", limit(10, time.Minute, middleware.KeyBySession()), m.Payments.Checkout)
		auth.POST("/media/images", limit(20, time.Minute, middleware.KeyBySession()), m.Media.UploadImage)
	}
}
