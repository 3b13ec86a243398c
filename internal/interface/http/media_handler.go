package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/qos-portal/internal/application"
	"github.com/oksasatya/qos-portal/pkg/apiclient"
	"github.com/oksasatya/qos-portal/pkg/helpers"
	"github.com/oksasatya/qos-portal/pkg/response"
)

type MediaHandler struct {
	Base
	Svc *application.MediaService
}

func NewMediaHandler(svc *application.MediaService, cookies *helpers.Manager, logger *logrus.Logger) *MediaHandler {
	return &MediaHandler{Base: Base{Logger: logger, Cookies: cookies}, Svc: svc}
}

// UploadImage POST /api/media/images (multipart field "file")
func (h *MediaHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, application.MaxImageSize+(1<<20))
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", []apiclient.FieldError{{Field: "file", Message: "is required"}})
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.writeError(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	m, err := h.Svc.UploadImage(c.Request.Context(), fh.Filename, fh.Size, f)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, m, "image uploaded", nil)
}
