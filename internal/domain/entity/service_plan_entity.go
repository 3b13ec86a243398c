package entity

type PlanStatus string

const (
	PlanActive   PlanStatus = "ACTIVE"
	PlanInactive PlanStatus = "INACTIVE"
)

type ServicePlan struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Price        float64    `json:"price"`
	DurationDays int        `json:"durationDays"`
	MaxTables    int        `json:"maxTables"`
	Features     []string   `json:"features,omitempty"`
	Status       PlanStatus `json:"status"`
	Audit
}
