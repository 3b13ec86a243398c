// Package application holds the query and mutation services behind the portal handlers.
package application

import (
	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/qos-portal/internal/domain/repository"
	"github.com/oksasatya/qos-portal/pkg/querycache"
)

type Repositories struct {
	Auth          repo.AuthRepository
	Users         repo.UserRepository
	ServicePlans  repo.ServicePlanRepository
	Subscriptions repo.SubscriptionRepository
	Reviews       repo.ReviewRepository
	QosInstances  repo.QosInstanceRepository
	Payments      repo.PaymentRepository
	Media         repo.MediaRepository
}

type Services struct {
	Auth          *AuthService
	Users         *UserService
	ServicePlans  *ServicePlanService
	Subscriptions *SubscriptionService
	Reviews       *ReviewService
	QosInstances  *QosInstanceService
	Payments      *PaymentService
	Media         *MediaService
}

func NewServices(r Repositories, cache *querycache.Client, logger *logrus.Logger) *Services {
	return &Services{
		Auth:          NewAuthService(r.Auth, cache, logger),
		Users:         NewUserService(r.Users, cache, logger),
		ServicePlans:  NewServicePlanService(r.ServicePlans, cache, logger),
		Subscriptions: NewSubscriptionService(r.Subscriptions, cache, logger),
		Reviews:       NewReviewService(r.Reviews, cache, logger),
		QosInstances:  NewQosInstanceService(r.QosInstances, cache, logger),
		Payments:      NewPaymentService(r.Payments, cache, logger),
		Media:         NewMediaService(r.Media, logger),
	}
}
