package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/qos-portal/internal/application"
	"github.com/oksasatya/qos-portal/pkg/apiclient"
	"github.com/oksasatya/qos-portal/pkg/helpers"
	"github.com/oksasatya/qos-portal/pkg/response"
	"github.com/oksasatya/qos-portal/pkg/validation"
)

// Base carries what every handler needs to answer errors and touch the session cookie.
type Base struct {
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

// writeError maps service errors onto the JSON envelope.
func (b Base) writeError(c *gin.Context, err error) {
	var (
		ee *apiclient.EntityError
		ae *apiclient.AuthError
		he *apiclient.HTTPError
	)
	switch {
	case errors.As(err, &ee):
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", ee.Errors)
	case errors.As(err, &ae):
		b.Cookies.Clear(c)
		response.Error[any](c, http.StatusUnauthorized, ae.Message(), gin.H{"redirectTo": loginPath})
	case errors.As(err, &he):
		response.Error[any](c, he.Status, he.Message, nil)
	case errors.Is(err, application.ErrInvalidID):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrEmptyImage), errors.Is(err, application.ErrUnsupportedImage):
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", []apiclient.FieldError{{Field: "file", Message: err.Error()}})
	case errors.Is(err, application.ErrImageTooLarge):
		response.Error[any](c, http.StatusRequestEntityTooLarge, err.Error(), nil)
	case errors.Is(err, context.DeadlineExceeded):
		b.log(c).WithError(err).Warn("backend timeout")
		response.Error[any](c, http.StatusGatewayTimeout, "backend timeout", nil)
	default:
		b.log(c).WithError(err).Error("backend call failed")
		response.Error[any](c, http.StatusBadGateway, "backend unavailable", nil)
	}
}

func (b Base) log(c *gin.Context) *logrus.Entry {
	if b.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return logrus.NewEntry(l)
	}
	return helpers.RequestLogger(b.Logger, c)
}

// bindError answers a failed bind with the same 422 shape the backend uses.
func (b Base) bindError(c *gin.Context, err error) {
	response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", validation.ToFieldErrors(err))
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}

// safeRedirect accepts only same-origin absolute paths.
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return ""
	}
	return target
}

// homeFor is where a fresh session lands, by the role in its token.
func homeFor(token string) string {
	p, err := helpers.DecodeSessionToken(token)
	if err != nil {
		return dashboardPath
	}
	return p.HomePath()
}

const (
	loginPath     = "/login"
	dashboardPath = "/dashboard"
)
