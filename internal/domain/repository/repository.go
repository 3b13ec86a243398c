package repository

import (
	"context"
	"io"

	"github.com/oksasatya/qos-portal/internal/domain/contract"
	"github.com/oksasatya/qos-portal/internal/domain/entity"
)

// CRUD is the shape shared by every admin-managed backend resource.
type CRUD[T any, C any, U any] interface {
	List(ctx context.Context, q contract.ListQuery) (*contract.ListRes[T], error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, body C) (*T, error)
	Update(ctx context.Context, id int64, body U) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// AuthRepository covers the backend auth endpoints.
type AuthRepository interface {
	Login(ctx context.Context, body contract.LoginBody) (*contract.LoginData, error)
	Register(ctx context.Context, body contract.RegisterBody) (*contract.LoginData, error)
	SendOTP(ctx context.Context, body contract.SendOTPBody) (string, error)
	ForgotPassword(ctx context.Context, body contract.ForgotPasswordBody) (string, error)
	Logout(ctx context.Context) error
	GoogleLink(ctx context.Context) (string, error)
	Me(ctx context.Context) (*entity.User, error)
}

type UserRepository interface {
	CRUD[entity.User, contract.CreateUserBody, contract.UpdateUserBody]
	UpdateMe(ctx context.Context, body contract.UpdateMeBody) (*entity.User, error)
	ChangePassword(ctx context.Context, body contract.ChangePasswordBody) (string, error)
}

type ServicePlanRepository interface {
	CRUD[entity.ServicePlan, contract.CreateServicePlanBody, contract.UpdateServicePlanBody]
}

type SubscriptionRepository interface {
	CRUD[entity.Subscription, contract.CreateSubscriptionBody, contract.UpdateSubscriptionBody]
	ListMine(ctx context.Context, q contract.ListQuery) (*contract.ListRes[entity.Subscription], error)
	Cancel(ctx context.Context, id int64) (*entity.Subscription, error)
}

type ReviewRepository interface {
	CRUD[entity.Review, contract.CreateReviewBody, contract.UpdateReviewBody]
}

type QosInstanceRepository interface {
	CRUD[entity.QosInstance, contract.CreateQosInstanceBody, contract.UpdateQosInstanceBody]
	HealthCheck(ctx context.Context, id int64) (*entity.QosInstance, error)
}

type PaymentRepository interface {
	List(ctx context.Context, q contract.ListQuery) (*contract.ListRes[entity.Payment], error)
	Get(ctx context.Context, id int64) (*entity.Payment, error)
	ListMine(ctx context.Context, q contract.ListQuery) (*contract.ListRes[entity.Payment], error)
	Create(ctx context.Context, body contract.CreatePaymentBody) (*contract.CreatePaymentData, error)
}

type MediaRepository interface {
	UploadImage(ctx context.Context, filename string, r io.Reader) (*entity.Media, error)
}
