package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/qos-portal/internal/domain/entity"
	repo "github.com/oksasatya/qos-portal/internal/domain/repository"
)

// MaxImageSize bounds uploads accepted by the portal before they reach the backend.
const MaxImageSize = 5 << 20

var imageExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
}

type MediaService struct {
	Repo   repo.MediaRepository
	Logger *logrus.Logger
}

func NewMediaService(r repo.MediaRepository, logger *logrus.Logger) *MediaService {
	return &MediaService{Repo: r, Logger: logger}
}

func (s *MediaService) UploadImage(ctx context.Context, filename string, size int64, r io.Reader) (*entity.Media, error) {
	if size <= 0 {
		return nil, ErrEmptyImage
	}
	if size > MaxImageSize {
		return nil, ErrImageTooLarge
	}
	if _, ok := imageExts[strings.ToLower(filepath.Ext(filename))]; !ok {
		return nil, ErrUnsupportedImage
	}
	m, err := s.Repo.UploadImage(ctx, filepath.Base(filename), r)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"filename": filename, "size": size}).Info("image uploaded")
	}
	return m, nil
}
