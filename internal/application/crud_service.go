package application

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/qos-portal/internal/domain/contract"
	repo "github.com/oksasatya/qos-portal/internal/domain/repository"
	"github.com/oksasatya/qos-portal/pkg/querycache"
)

// CRUDService serves list and detail queries from the query cache and drops
// the resource, plus any resources embedding it, after each mutation.
type CRUDService[T any, C any, U any] struct {
	Repo     repo.CRUD[T, C, U]
	Cache    *querycache.Client
	Logger   *logrus.Logger
	resource string
	related  []string
	fetch    []querycache.FetchOption
}

func NewCRUDService[T any, C any, U any](r repo.CRUD[T, C, U], cache *querycache.Client, logger *logrus.Logger, resource string, related ...string) *CRUDService[T, C, U] {
	return &CRUDService[T, C, U]{Repo: r, Cache: cache, Logger: logger, resource: resource, related: related}
}

// WithFetchOptions applies opts to every query of this service.
func (s *CRUDService[T, C, U]) WithFetchOptions(opts ...querycache.FetchOption) *CRUDService[T, C, U] {
	s.fetch = append(s.fetch, opts...)
	return s
}

func (s *CRUDService[T, C, U]) List(ctx context.Context, q contract.ListQuery) (*contract.ListRes[T], error) {
	key := querycache.NewKey(s.resource, "list", q.CacheKey())
	return querycache.Fetch(ctx, s.Cache, key, func(ctx context.Context) (*contract.ListRes[T], error) {
		return s.Repo.List(ctx, q)
	}, s.fetch...)
}

func (s *CRUDService[T, C, U]) Get(ctx context.Context, id int64) (*T, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	key := querycache.NewKey(s.resource, "detail", strconv.FormatInt(id, 10))
	return querycache.Fetch(ctx, s.Cache, key, func(ctx context.Context) (*T, error) {
		return s.Repo.Get(ctx, id)
	}, s.fetch...)
}

func (s *CRUDService[T, C, U]) Create(ctx context.Context, body C) (*T, error) {
	out, err := s.Repo.Create(ctx, body)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return out, nil
}

func (s *CRUDService[T, C, U]) Update(ctx context.Context, id int64, body U) (*T, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	out, err := s.Repo.Update(ctx, id, body)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return out, nil
}

func (s *CRUDService[T, C, U]) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CRUDService[T, C, U]) invalidate(ctx context.Context) {
	s.Cache.Invalidate(ctx, append([]string{s.resource}, s.related...)...)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"resource": s.resource, "related": s.related}).Debug("query cache invalidated")
	}
}
