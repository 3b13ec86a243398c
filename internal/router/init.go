package router

import (
	"github.com/oksasatya/qos-portal/internal/application"
	"github.com/oksasatya/qos-portal/internal/container"
	"github.com/oksasatya/qos-portal/internal/domain/contract"
	"github.com/oksasatya/qos-portal/internal/domain/entity"
	"github.com/oksasatya/qos-portal/internal/infrastructure/backend"
	handlers "github.com/oksasatya/qos-portal/internal/interface/http"
	"github.com/oksasatya/qos-portal/internal/interface/middleware"
	"github.com/oksasatya/qos-portal/internal/router/modules"
)

func buildServices() *application.Services {
	b := backend.NewRepositories(container.GetAPIClient())
	repos := application.Repositories{
		Auth:          b.Auth,
		Users:         b.Users,
		ServicePlans:  b.ServicePlans,
		Subscriptions: b.Subscriptions,
		Reviews:       b.Reviews,
		QosInstances:  b.QosInstances,
		Payments:      b.Payments,
		Media:         b.Media,
	}
	return application.NewServices(repos, container.GetQueryCache(), container.GetLogger())
}

// InitModules wires repositories, services and handlers from the container and
// registers every module. Call once during startup, before RegisterAll.
func InitModules(r *Registry) {
	svc := buildServices()
	cookies := container.GetCookies()
	logger := container.GetLogger()

	r.Use(middleware.SessionContext())
	r.UsePages(middleware.SessionContext(), middleware.SessionGate())

	payments := handlers.NewPaymentHandler(svc.Payments, cookies, logger)
	debug := false
	if cfg := container.GetConfig(); cfg != nil {
		debug = cfg.IsDevelopment()
	}

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(svc.Auth, cookies, logger)))
	r.Add(&modules.AdminModule{
		Users:         handlers.NewResourceHandler[entity.User, contract.CreateUserBody, contract.UpdateUserBody](svc.Users, "user", cookies, logger),
		ServicePlans:  handlers.NewResourceHandler[entity.ServicePlan, contract.CreateServicePlanBody, contract.UpdateServicePlanBody](svc.ServicePlans, "service plan", cookies, logger),
		Subscriptions: handlers.NewSubscriptionHandler(svc.Subscriptions, cookies, logger),
		Reviews:       handlers.NewResourceHandler[entity.Review, contract.CreateReviewBody, contract.UpdateReviewBody](svc.Reviews, "review", cookies, logger),
		QosInstances:  handlers.NewQosInstanceHandler(svc.QosInstances, cookies, logger),
		Payments:      payments,
	})
	r.Add(&modules.CustomerModule{
		Me:       handlers.NewMeHandler(svc, cookies, logger),
		Payments: payments,
		Media:    handlers.NewMediaHandler(svc.Media, cookies, logger),
	})
	r.Add(&modules.PaymentModule{Handler: payments})
	r.Add(&modules.PageModule{Handler: handlers.NewPageHandler(svc, cookies, logger)})
	r.Add(&modules.HealthModule{Handler: handlers.NewHealthHandler(container.GetRedis()), Debug: debug})
}
