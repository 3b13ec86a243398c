package entity

import "time"

type SubscriptionStatus string

const (
	SubscriptionPending   SubscriptionStatus = "PENDING"
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionExpired   SubscriptionStatus = "EXPIRED"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
)

type Subscription struct {
	ID            int64              `json:"id"`
	UserID        int64              `json:"userId"`
	ServicePlanID int64              `json:"servicePlanId"`
	StartDate     *time.Time         `json:"startDate,omitempty"`
	EndDate       *time.Time         `json:"endDate,omitempty"`
	AutoRenew     bool               `json:"autoRenew"`
	Status        SubscriptionStatus `json:"status"`
	User          *User              `json:"user,omitempty"`
	ServicePlan   *ServicePlan       `json:"servicePlan,omitempty"`
	Audit
}

// DaysLeft counts whole days until EndDate; zero once past or unset.
func (s Subscription) DaysLeft(now time.Time) int {
	if s.EndDate == nil || !s.EndDate.After(now) {
		return 0
	}
	return int(s.EndDate.Sub(now).Hours() / 24)
}
