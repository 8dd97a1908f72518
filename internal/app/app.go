package app

import (
	"time"

	"fastfeet/internal/handlers/rest/deliveries_get"
	"fastfeet/internal/handlers/rest/deliveries_post"
	"fastfeet/internal/handlers/rest/deliveries_put"
	"fastfeet/internal/handlers/rest/package_post"
	"fastfeet/internal/handlers/rest/package_problems_get"
	"fastfeet/internal/handlers/rest/problem_cancel_delete"
	"fastfeet/internal/handlers/rest/problem_post"
	"fastfeet/internal/handlers/rest/problems_get"
	"fastfeet/internal/pkg/middlewares/auth"
	notificationService "fastfeet/internal/service/notification"
	"fastfeet/pkg/background"
	"fastfeet/pkg/clock"
)

type (
	PackageStatsInterval  time.Duration
	SystemMetricsInterval time.Duration
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	ServicePackage    ServicePackage
	ServiceProblem    ServiceProblem
	Authenticator     auth.Authenticator
	Clock             clock.Clock
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	deliveries_post.Service
	deliveries_put.Service
	deliveries_get.Service
}

type ServicePackage interface {
	package_post.Service
}

type ServiceProblem interface {
	problem_post.Service
	problems_get.Service
	package_problems_get.Service
	problem_cancel_delete.Service
}

type NotificationWorkerApp struct {
	NotificationService *notificationService.Service
}
