package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/qos-portal/internal/application"
	"github.com/oksasatya/qos-portal/internal/domain/contract"
	"github.com/oksasatya/qos-portal/internal/domain/entity"
	"github.com/oksasatya/qos-portal/pkg/apiclient"
	"github.com/oksasatya/qos-portal/pkg/helpers"
	"github.com/oksasatya/qos-portal/pkg/response"
)

type AuthHandler struct {
	Base
	Svc *application.AuthService
}

func NewAuthHandler(svc *application.AuthService, cookies *helpers.Manager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Base: Base{Logger: logger, Cookies: cookies}, Svc: svc}
}

type sessionRes struct {
	User       *entity.User `json:"user,omitempty"`
	RedirectTo string       `json:"redirectTo"`
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var body contract.LoginBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.bindError(c, err)
		return
	}
	data, err := h.Svc.Login(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.startSession(c, http.StatusOK, data, "login successful")
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var body contract.RegisterBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.bindError(c, err)
		return
	}
	data, err := h.Svc.Register(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.startSession(c, http.StatusCreated, data, "registration successful")
}

func (h *AuthHandler) startSession(c *gin.Context, status int, data *contract.LoginData, msg string) {
	token := data.AccessToken
	if token == "" {
		// a token the client picked up outside data counts only if it is new;
		// the cookie the request came in with is not a fresh session
		if t := apiclient.SessionToken(c.Request.Context()); t != helpers.SessionFrom(c) {
			token = t
		}
	}
	if token == "" {
		helpers.LogError(h.Logger, "backend returned no access token", nil, logrus.Fields{"path": c.Request.URL.Path})
		response.Error[any](c, http.StatusBadGateway, "backend returned no session", nil)
		return
	}
	h.Cookies.SetSession(c, token)

	redirect := homeFor(token)
	if r := safeRedirect(c.Query("redirect")); r != "" {
		redirect = r
	}
	response.Success(c, status, sessionRes{User: data.User, RedirectTo: redirect}, msg, nil)
}

// SendOTP POST /api/auth/otp
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var body contract.SendOTPBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.bindError(c, err)
		return
	}
	msg, err := h.Svc.SendOTP(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, msg, nil)
}

// ForgotPassword POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var body contract.ForgotPasswordBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.bindError(c, err)
		return
	}
	msg, err := h.Svc.ForgotPassword(c.Request.Context(), body)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sessionRes{RedirectTo: loginPath}, msg, nil)
}

// Logout POST /api/auth/logout. The cookie goes whatever the backend says.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Svc.Logout(c.Request.Context()); err != nil {
		helpers.LogError(h.Logger, "backend logout failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
	}
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, sessionRes{RedirectTo: loginPath}, "logged out", nil)
}

// LogoutPage GET /logout?sessionToken=. Target of the redirect issued when a
// server-rendered page hits a 401.
func (h *AuthHandler) LogoutPage(c *gin.Context) {
	token := c.Query("sessionToken")
	if token == "" {
		token = helpers.SessionFrom(c)
	}
	if token != "" {
		ctx := apiclient.WithSession(c.Request.Context(), token)
		if err := h.Svc.Logout(ctx); err != nil && !apiclient.IsUnauthorized(err) {
			helpers.LogError(h.Logger, "backend logout failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
		}
	}
	h.Cookies.Clear(c)
	c.Redirect(http.StatusFound, loginPath)
}

// GoogleRedirect GET /api/auth/google
func (h *AuthHandler) GoogleRedirect(c *gin.Context) {
	link, err := h.Svc.GoogleLink(c.Request.Context())
	if err != nil || link == "" {
		helpers.LogError(h.Logger, "google link failed", err, nil)
		c.Redirect(http.StatusFound, loginPath+"?error=google")
		return
	}
	c.Redirect(http.StatusFound, link)
}

// GoogleCallback GET /oauth-google-callback?accessToken=
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	token := c.Query("accessToken")
	p, err := helpers.DecodeSessionToken(token)
	if err != nil || !p.HasKnownRole() {
		c.Redirect(http.StatusFound, loginPath+"?error=oauth")
		return
	}
	h.Cookies.SetSession(c, token)
	helpers.LogInfo(h.Logger, "oauth login", logrus.Fields{"user_id": p.UserID, "role": p.Role})
	c.Redirect(http.StatusFound, p.HomePath())
}
