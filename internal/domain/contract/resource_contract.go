package contract

import "time"

type CreateUserBody struct {
	Email          string `json:"email" binding:"required,email"`
	Name           string `json:"name" binding:"required,min=1,max=100"`
	Password       string `json:"password" binding:"required,pwd"`
	PhoneNumber    string `json:"phoneNumber" binding:"omitempty,phone"`
	RestaurantName string `json:"restaurantName" binding:"omitempty,max=200"`
	Address        string `json:"address" binding:"omitempty,max=500"`
	Role           string `json:"role" binding:"omitempty,oneof=ADMIN CUSTOMER"`
	Status         string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE BLOCKED"`
}

type UpdateUserBody struct {
	Name           string `json:"name" binding:"omitempty,min=1,max=100"`
	PhoneNumber    string `json:"phoneNumber" binding:"omitempty,phone"`
	Avatar         string `json:"avatar" binding:"omitempty,url"`
	RestaurantName string `json:"restaurantName" binding:"omitempty,max=200"`
	Address        string `json:"address" binding:"omitempty,max=500"`
	Role           string `json:"role" binding:"omitempty,oneof=ADMIN CUSTOMER"`
	Status         string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE BLOCKED"`
}

type CreateServicePlanBody struct {
	Name         string   `json:"name" binding:"required,min=1,max=100"`
	Description  string   `json:"description" binding:"omitempty,max=1000"`
	Price        float64  `json:"price" binding:"gte=0"`
	DurationDays int      `json:"durationDays" binding:"required,gte=1"`
	MaxTables    int      `json:"maxTables" binding:"required,gte=1"`
	Features     []string `json:"features" binding:"omitempty,dive,min=1,max=200"`
	Status       string   `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

type UpdateServicePlanBody struct {
	Name         string   `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description  string   `json:"description,omitempty" binding:"omitempty,max=1000"`
	Price        *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	DurationDays int      `json:"durationDays,omitempty" binding:"omitempty,gte=1"`
	MaxTables    int      `json:"maxTables,omitempty" binding:"omitempty,gte=1"`
	Features     []string `json:"features,omitempty" binding:"omitempty,dive,min=1,max=200"`
	Status       string   `json:"status,omitempty" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

type CreateSubscriptionBody struct {
	UserID        int64      `json:"userId" binding:"required,gte=1"`
	ServicePlanID int64      `json:"servicePlanId" binding:"required,gte=1"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	AutoRenew     bool       `json:"autoRenew"`
	Status        string     `json:"status" binding:"omitempty,oneof=PENDING ACTIVE EXPIRED CANCELLED"`
}

type UpdateSubscriptionBody struct {
	ServicePlanID int64      `json:"servicePlanId,omitempty" binding:"omitempty,gte=1"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	AutoRenew     *bool      `json:"autoRenew,omitempty"`
	Status        string     `json:"status,omitempty" binding:"omitempty,oneof=PENDING ACTIVE EXPIRED CANCELLED"`
}

type CreateReviewBody struct {
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

type UpdateReviewBody struct {
	Rating  int    `json:"rating,omitempty" binding:"omitempty,gte=1,lte=5"`
	Content string `json:"content,omitempty" binding:"omitempty,min=1,max=2000"`
	Status  string `json:"status,omitempty" binding:"omitempty,oneof=PENDING APPROVED HIDDEN"`
}

type CreateQosInstanceBody struct {
	SubscriptionID int64  `json:"subscriptionId" binding:"required,gte=1"`
	Name           string `json:"name" binding:"required,min=1,max=100"`
	Domain         string `json:"domain" binding:"required,fqdn"`
	Version        string `json:"version" binding:"omitempty,max=50"`
	Status         string `json:"status" binding:"omitempty,oneof=RUNNING STOPPED ERROR"`
}

type UpdateQosInstanceBody struct {
	Name    string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Domain  string `json:"domain,omitempty" binding:"omitempty,fqdn"`
	Version string `json:"version,omitempty" binding:"omitempty,max=50"`
	Status  string `json:"status,omitempty" binding:"omitempty,oneof=RUNNING STOPPED ERROR"`
}

// CreatePaymentBody starts a checkout. SubscriptionID is set when renewing.
type CreatePaymentBody struct {
	ServicePlanID  int64  `json:"servicePlanId" binding:"required,gte=1"`
	SubscriptionID *int64 `json:"subscriptionId,omitempty" binding:"omitempty,gte=1"`
	Method         string `json:"method" binding:"omitempty,max=50"`
	ReturnURL      string `json:"returnUrl,omitempty" binding:"omitempty,url"`
}

// IsRenewal reports whether the checkout extends an existing subscription.
func (b CreatePaymentBody) IsRenewal() bool { return b.SubscriptionID != nil }
