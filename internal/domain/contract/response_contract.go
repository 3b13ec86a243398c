// Package contract holds the request and response shapes exchanged with the backend.
package contract

import "github.com/oksasatya/qos-portal/internal/domain/entity"

// ListRes is the backend's paged list envelope.
type ListRes[T any] struct {
	Message    string `json:"message,omitempty"`
	Data       []T    `json:"data"`
	TotalItems int    `json:"totalItems"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"totalPages"`
}

// ItemRes is the backend's single-resource envelope.
type ItemRes[T any] struct {
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

type MessageRes struct {
	Message string `json:"message"`
}

type LoginData struct {
	AccessToken string       `json:"accessToken"`
	User        *entity.User `json:"user,omitempty"`
}

type LoginRes = ItemRes[LoginData]

type GoogleLinkRes = ItemRes[string]

type CreatePaymentData struct {
	PaymentURL string `json:"paymentUrl"`
	OrderID    string `json:"orderId"`
}

type CreatePaymentRes = ItemRes[CreatePaymentData]

type UploadImageRes = ItemRes[entity.Media]

type HealthCheckRes = ItemRes[entity.QosInstance]
