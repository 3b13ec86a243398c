package application

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/qos-portal/internal/domain/contract"
	"github.com/oksasatya/qos-portal/internal/domain/entity"
	repo "github.com/oksasatya/qos-portal/internal/domain/repository"
	"github.com/oksasatya/qos-portal/pkg/querycache"
)

type PaymentService struct {
	Repo   repo.PaymentRepository
	Cache  *querycache.Client
	Logger *logrus.Logger
}

func NewPaymentService(r repo.PaymentRepository, cache *querycache.Client, logger *logrus.Logger) *PaymentService {
	return &PaymentService{Repo: r, Cache: cache, Logger: logger}
}

func (s *PaymentService) List(ctx context.Context, q contract.ListQuery) (*contract.ListRes[entity.Payment], error) {
	return querycache.Fetch(ctx, s.Cache, querycache.NewKey(ResPayments, "list", q.CacheKey()), func(ctx context.Context) (*contract.ListRes[entity.Payment], error) {
		return s.Repo.List(ctx, q)
	})
}

func (s *PaymentService) Get(ctx context.Context, id int64) (*entity.Payment, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return querycache.Fetch(ctx, s.Cache, querycache.NewKey(ResPayments, "detail", strconv.FormatInt(id, 10)), func(ctx context.Context) (*entity.Payment, error) {
		return s.Repo.Get(ctx, id)
	})
}

func (s *PaymentService) ListMine(ctx context.Context, q contract.ListQuery) (*contract.ListRes[entity.Payment], error) {
	return querycache.Fetch(ctx, s.Cache, querycache.NewKey(ResPayments, "mine", q.CacheKey()), func(ctx context.Context) (*contract.ListRes[entity.Payment], error) {
		return s.Repo.ListMine(ctx, q)
	})
}

// Checkout creates a pending payment and returns the gateway URL. A new or
// renewed subscription appears once the gateway confirms, so both resources are dropped.
func (s *PaymentService) Checkout(ctx context.Context, body contract.CreatePaymentBody) (*contract.CreatePaymentData, error) {
	out, err := s.Repo.Create(ctx, body)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, ResPayments, ResSubscriptions)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"order_id":        out.OrderID,
			"service_plan_id": body.ServicePlanID,
			"renewal":         body.IsRenewal(),
		}).Info("checkout started")
	}
	return out, nil
}

// Settled drops payment and subscription queries after the gateway redirects back.
func (s *PaymentService) Settled(ctx context.Context) {
	s.Cache.Invalidate(ctx, ResPayments, ResSubscriptions, ResQosInstances)
}
