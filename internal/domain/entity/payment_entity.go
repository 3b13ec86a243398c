package entity

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

type Payment struct {
	ID             int64         `json:"id"`
	UserID         int64         `json:"userId"`
	SubscriptionID *int64        `json:"subscriptionId,omitempty"`
	ServicePlanID  int64         `json:"servicePlanId"`
	OrderID        string        `json:"orderId"`
	Amount         float64       `json:"amount"`
	Method         string        `json:"method,omitempty"`
	Status         PaymentStatus `json:"status"`
	PaidAt         *time.Time    `json:"paidAt,omitempty"`
	Audit
}

// Media is the result of an upload to the backend media store.
type Media struct {
	URL string `json:"url"`
}
