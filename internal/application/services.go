package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/qos-portal/internal/domain/contract"
	"github.com/oksasatya/qos-portal/internal/domain/entity"
	repo "github.com/oksasatya/qos-portal/internal/domain/repository"
	"github.com/oksasatya/qos-portal/pkg/querycache"
)

// Query cache resources. They match the backend path segments so logs read alike.
const (
	ResUsers         = "users"
	ResServicePlans  = "service-plans"
	ResSubscriptions = "subscriptions"
	ResReviews       = "reviews"
	ResQosInstances  = "qos-instances"
	ResPayments      = "payments"
	ResMe            = "me"
)

// healthStaleTime keeps instance health fresher than the default window.
const healthStaleTime = 10 * time.Second

type UserService struct {
	*CRUDService[entity.User, contract.CreateUserBody, contract.UpdateUserBody]
	users repo.UserRepository
}

func NewUserService(r repo.UserRepository, cache *querycache.Client, logger *logrus.Logger) *UserService {
	return &UserService{
		CRUDService: NewCRUDService[entity.User, contract.CreateUserBody, contract.UpdateUserBody](r, cache, logger, ResUsers, ResSubscriptions, ResReviews, ResMe),
		users:       r,
	}
}

func (s *UserService) UpdateMe(ctx context.Context, body contract.UpdateMeBody) (*entity.User, error) {
	u, err := s.users.UpdateMe(ctx, body)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, ResMe, ResUsers)
	return u, nil
}

func (s *UserService) ChangePassword(ctx context.Context, body contract.ChangePasswordBody) (string, error) {
	return s.users.ChangePassword(ctx, body)
}

type ServicePlanService = CRUDService[entity.ServicePlan, contract.CreateServicePlanBody, contract.UpdateServicePlanBody]

func NewServicePlanService(r repo.ServicePlanRepository, cache *querycache.Client, logger *logrus.Logger) *ServicePlanService {
	return NewCRUDService[entity.ServicePlan, contract.CreateServicePlanBody, contract.UpdateServicePlanBody](r, cache, logger, ResServicePlans, ResSubscriptions)
}

type ReviewService = CRUDService[entity.Review, contract.CreateReviewBody, contract.UpdateReviewBody]

func NewReviewService(r repo.ReviewRepository, cache *querycache.Client, logger *logrus.Logger) *ReviewService {
	return NewCRUDService[entity.Review, contract.CreateReviewBody, contract.UpdateReviewBody](r, cache, logger, ResReviews)
}

type SubscriptionService struct {
	*CRUDService[entity.Subscription, contract.CreateSubscriptionBody, contract.UpdateSubscriptionBody]
	subs repo.SubscriptionRepository
}

func NewSubscriptionService(r repo.SubscriptionRepository, cache *querycache.Client, logger *logrus.Logger) *SubscriptionService {
	return &SubscriptionService{
		CRUDService: NewCRUDService[entity.Subscription, contract.CreateSubscriptionBody, contract.UpdateSubscriptionBody](r, cache, logger, ResSubscriptions, ResQosInstances),
		subs:        r,
	}
}

func (s *SubscriptionService) ListMine(ctx context.Context, q contract.ListQuery) (*contract.ListRes[entity.Subscription], error) {
	key := querycache.NewKey(ResSubscriptions, "mine", q.CacheKey())
	return querycache.Fetch(ctx, s.Cache, key, func(ctx context.Context) (*contract.ListRes[entity.Subscription], error) {
		return s.subs.ListMine(ctx, q)
	})
}

func (s *SubscriptionService) Cancel(ctx context.Context, id int64) (*entity.Subscription, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	out, err := s.subs.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, ResSubscriptions, ResQosInstances)
	return out, nil
}

type QosInstanceService struct {
	*CRUDService[entity.QosInstance, contract.CreateQosInstanceBody, contract.UpdateQosInstanceBody]
	instances repo.QosInstanceRepository
}

func NewQosInstanceService(r repo.QosInstanceRepository, cache *querycache.Client, logger *logrus.Logger) *QosInstanceService {
	crud := NewCRUDService[entity.QosInstance, contract.CreateQosInstanceBody, contract.UpdateQosInstanceBody](r, cache, logger, ResQosInstances).
		WithFetchOptions(querycache.WithStaleTime(healthStaleTime))
	return &QosInstanceService{CRUDService: crud, instances: r}
}

// HealthCheck triggers a probe and drops cached instance queries so the next
// list shows the new health status.
func (s *QosInstanceService) HealthCheck(ctx context.Context, id int64) (*entity.QosInstance, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	out, err := s.instances.HealthCheck(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, ResQosInstances)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"instance_id": id, "health": out.HealthStatus}).Info("qos instance health checked")
	}
	return out, nil
}
