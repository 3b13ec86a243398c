package backend

import (
	"github.com/oksasatya/qos-portal/internal/domain/repository"
	"github.com/oksasatya/qos-portal/pkg/apiclient"
)

var (
	_ repository.AuthRepository         = (*Auth)(nil)
	_ repository.UserRepository         = (*Users)(nil)
	_ repository.ServicePlanRepository  = (*ServicePlans)(nil)
	_ repository.SubscriptionRepository = (*Subscriptions)(nil)
	_ repository.ReviewRepository       = (*Reviews)(nil)
	_ repository.QosInstanceRepository  = (*QosInstances)(nil)
	_ repository.PaymentRepository      = (*Payments)(nil)
	_ repository.MediaRepository        = (*Media)(nil)
)

// Repositories bundles every resource module over one client.
type Repositories struct {
	Auth          *Auth
	Users         *Users
	ServicePlans  *ServicePlans
	Subscriptions *Subscriptions
	Reviews       *Reviews
	QosInstances  *QosInstances
	Payments      *Payments
	Media         *Media
}

func NewRepositories(api *apiclient.Client) *Repositories {
	return &Repositories{
		Auth:          NewAuth(api),
		Users:         NewUsers(api),
		ServicePlans:  NewServicePlans(api),
		Subscriptions: NewSubscriptions(api),
		Reviews:       NewReviews(api),
		QosInstances:  NewQosInstances(api),
		Payments:      NewPayments(api),
		Media:         NewMedia(api),
	}
}
