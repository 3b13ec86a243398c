package application

import "errors"

var (
	ErrInvalidID        = errors.New("invalid id")
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = errors.New("image too large")
	ErrEmptyImage       = errors.New("empty image")
)
