package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/qos-portal/internal/interface/http"
)

// PaymentModule receives the gateway redirects. They carry no session
// requirement: the browser may come back without the cookie.
type PaymentModule struct {
	Handler *handlers.PaymentHandler
}

func (m *PaymentModule) Register(api, pages *gin.RouterGroup) {
	api.GET("/payment/return", m.Handler.Return)
	api.GET("/payment/renew-return", m.Handler.RenewReturn)
}
