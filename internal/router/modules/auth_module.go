package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/qos-portal/internal/interface/http"
	"github.com/oksasatya/qos-portal/internal/interface/middleware"
)

// AuthModule wires the session endpoints.
// API: POST /api/auth/{login,register,otp,forgot-password,logout}, GET /api/auth/google
// Pages: GET /logout, GET /oauth-google-callback
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(api, pages *gin.RouterGroup) {
	loginLimiter := strictLimit(10, time.Minute, middleware.KeyByIPAndPath())
	otpLimiter := strictLimit(5, time.Minute, middleware.KeyByIPAndPath())

	auth := api.Group("/auth")
	{
		auth.POST("/login", loginLimiter, m.Handler.Login)
		auth.POST("/register", loginLimiter, m.Handler.Register)
		auth.POST("/otp", otpLimiter, m.Handler.SendOTP)
		auth.POST("/forgot-password", otpLimiter, m.Handler.ForgotPassword)
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/google", m.Handler.GoogleRedirect)
	}

	pages.GET("/logout", m.Handler.LogoutPage)
	pages.GET("/oauth-google-callback", m.Handler.GoogleCallback)
}
