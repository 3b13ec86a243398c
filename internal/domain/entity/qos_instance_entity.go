package entity

import "time"

type InstanceStatus string

const (
	InstanceRunning InstanceStatus = "RUNNING"
	InstanceStopped InstanceStatus = "STOPPED"
	InstanceError   InstanceStatus = "ERROR"
)

type HealthStatus string

const (
	HealthHealthy   HealthStatus = "HEALTHY"
	HealthUnhealthy HealthStatus = "UNHEALTHY"
	HealthUnknown   HealthStatus = "UNKNOWN"
)

// QosInstance is a deployed ordering-system instance owned by a subscription.
type QosInstance struct {
	ID                int64          `json:"id"`
	SubscriptionID    int64          `json:"subscriptionId"`
	Name              string         `json:"name"`
	Domain            string         `json:"domain"`
	Version           string         `json:"version,omitempty"`
	Status            InstanceStatus `json:"status"`
	HealthStatus      HealthStatus   `json:"healthStatus"`
	ResponseTimeMs    *int64         `json:"responseTimeMs,omitempty"`
	LastHealthCheckAt *time.Time     `json:"lastHealthCheckAt,omitempty"`
	Subscription      *Subscription  `json:"subscription,omitempty"`
	Audit
}
