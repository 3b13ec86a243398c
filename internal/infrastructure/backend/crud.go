// Package backend maps repository calls onto the remote REST API.
package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/oksasatya/qos-portal/internal/domain/contract"
	"github.com/oksasatya/qos-portal/pkg/apiclient"
)

const (
	ResourceUsers         = "users"
	ResourceServicePlans  = "service-plans"
	ResourceSubscriptions = "subscriptions"
	ResourceReviews       = "reviews"
	ResourceQosInstances  = "qos-instances"
	ResourcePayments      = "payments"
	ResourceMedia         = "media"
	ResourceAuth          = "auth"
)

// crud implements the list/get/create/update/delete calls of one resource.
type crud[T any, C any, U any] struct {
	api      *apiclient.Client
	resource string
}

func newCRUD[T any, C any, U any](api *apiclient.Client, resource string) crud[T, C, U] {
	return crud[T, C, U]{api: api, resource: resource}
}

func (r crud[T, C, U]) path(id int64, tail ...string) string {
	p := r.resource + "/" + strconv.FormatInt(id, 10)
	for _, t := range tail {
		p += "/" + t
	}
	return p
}

func (r crud[T, C, U]) List(ctx context.Context, q contract.ListQuery) (*contract.ListRes[T], error) {
	return list[T](ctx, r.api, r.resource, q)
}

func (r crud[T, C, U]) Get(ctx context.Context, id int64) (*T, error) {
	return item[T](ctx, r.api, apiclient.Request{Method: http.MethodGet, Path: r.path(id)})
}

func (r crud[T, C, U]) Create(ctx context.Context, body C) (*T, error) {
	return item[T](ctx, r.api, apiclient.Request{Method: http.MethodPost, Path: r.resource, Body: body})
}

func (r crud[T, C, U]) Update(ctx context.Context, id int64, body U) (*T, error) {
	return item[T](ctx, r.api, apiclient.Request{Method: http.MethodPut, Path: r.path(id), Body: body})
}

func (r crud[T, C, U]) Delete(ctx context.Context, id int64) error {
	_, err := r.api.Do(ctx, apiclient.Request{Method: http.MethodDelete, Path: r.path(id)})
	return err
}

func list[T any](ctx context.Context, api *apiclient.Client, path string, q contract.ListQuery) (*contract.ListRes[T], error) {
	res, err := apiclient.Call[contract.ListRes[T]](ctx, api, apiclient.Request{Method: http.MethodGet, Path: path, Params: q.Values()})
	if err != nil {
		return nil, err
	}
	if res.Data == nil {
		res.Data = []T{}
	}
	return &res, nil
}

func item[T any](ctx context.Context, api *apiclient.Client, req apiclient.Request) (*T, error) {
	res, err := apiclient.Call[contract.ItemRes[T]](ctx, api, req)
	if err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func message(ctx context.Context, api *apiclient.Client, req apiclient.Request) (string, error) {
	res, err := apiclient.Call[contract.MessageRes](ctx, api, req)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}
