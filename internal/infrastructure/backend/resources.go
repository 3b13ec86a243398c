package backend

import (
	"context"
	"net/http"

	"github.com/oksasatya/qos-portal/internal/domain/contract"
	"github.com/oksasatya/qos-portal/internal/domain/entity"
	"github.com/oksasatya/qos-portal/pkg/apiclient"
)

type Users struct {
	crud[entity.User, contract.CreateUserBody, contract.UpdateUserBody]
}

func NewUsers(api *apiclient.Client) *Users {
	return &Users{newCRUD[entity.User, contract.CreateUserBody, contract.UpdateUserBody](api, ResourceUsers)}
}

func (r *Users) UpdateMe(ctx context.Context, body contract.UpdateMeBody) (*entity.User, error) {
	return item[entity.User](ctx, r.api, apiclient.Request{Method: http.MethodPut, Path: ResourceUsers + "/me", Body: body})
}

func (r *Users) ChangePassword(ctx context.Context, body contract.ChangePasswordBody) (string, error) {
	return message(ctx, r.api, apiclient.Request{Method: http.MethodPut, Path: ResourceUsers + "/me/password", Body: body})
}

type ServicePlans struct {
	crud[entity.ServicePlan, contract.CreateServicePlanBody, contract.UpdateServicePlanBody]
}

func NewServicePlans(api *apiclient.Client) *ServicePlans {
	return &ServicePlans{newCRUD[entity.ServicePlan, contract.CreateServicePlanBody, contract.UpdateServicePlanBody](api, ResourceServicePlans)}
}

type Subscriptions struct {
	crud[entity.Subscription, contract.CreateSubscriptionBody, contract.UpdateSubscriptionBody]
}

func NewSubscriptions(api *apiclient.Client) *Subscriptions {
	return &Subscriptions{newCRUD[entity.Subscription, contract.CreateSubscriptionBody, contract.UpdateSubscriptionBody](api, ResourceSubscriptions)}
}

func (r *Subscriptions) ListMine(ctx context.Context, q contract.ListQuery) (*contract.ListRes[entity.Subscription], error) {
	return list[entity.Subscription](ctx, r.api, ResourceSubscriptions+"/me", q)
}

func (r *Subscriptions) Cancel(ctx context.Context, id int64) (*entity.Subscription, error) {
	return item[entity.Subscription](ctx, r.api, apiclient.Request{Method: http.MethodPut, Path: r.path(id, "cancel")})
}

type Reviews struct {
	crud[entity.Review, contract.CreateReviewBody, contract.UpdateReviewBody]
}

func NewReviews(api *apiclient.Client) *Reviews {
	return &Reviews{newCRUD[entity.Review, contract.CreateReviewBody, contract.UpdateReviewBody](api, ResourceReviews)}
}

type QosInstances struct {
	crud[entity.QosInstance, contract.CreateQosInstanceBody, contract.UpdateQosInstanceBody]
}

func NewQosInstances(api *apiclient.Client) *QosInstances {
	return &QosInstances{newCRUD[entity.QosInstance, contract.CreateQosInstanceBody, contract.UpdateQosInstanceBody](api, ResourceQosInstances)}
}

// HealthCheck asks the backend to probe the instance now and returns the refreshed record.
func (r *QosInstances) HealthCheck(ctx context.Context, id int64) (*entity.QosInstance, error) {
	return item[entity.QosInstance](ctx, r.api, apiclient.Request{Method: http.MethodPost, Path: r.path(id, "health-check")})
}

// Payments has no update or delete: payment records only change through the gateway callback.
type Payments struct {
	api *apiclient.Client
}

func NewPayments(api *apiclient.Client) *Payments { return &Payments{api: api} }

func (r *Payments) List(ctx context.Context, q contract.ListQuery) (*contract.ListRes[entity.Payment], error) {
	return list[entity.Payment](ctx, r.api, ResourcePayments, q)
}

func (r *Payments) Get(ctx context.Context, id int64) (*entity.Payment, error) {
	return newCRUD[entity.Payment, struct{}, struct{}](r.api, ResourcePayments).Get(ctx, id)
}

func (r *Payments) ListMine(ctx context.Context, q contract.ListQuery) (*contract.ListRes[entity.Payment], error) {
	return list[entity.Payment](ctx, r.api, ResourcePayments+"/me", q)
}

func (r *Payments) Create(ctx context.Context, body contract.CreatePaymentBody) (*contract.CreatePaymentData, error) {
	return item[contract.CreatePaymentData](ctx, r.api, apiclient.Request{Method: http.MethodPost, Path: ResourcePayments, Body: body})
}
