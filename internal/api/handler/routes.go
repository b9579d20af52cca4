package handler

import (
	"net/http"

	"github.com/jcarlosamorim/consultoria-api/infrastructure/repository"
	"github.com/jcarlosamorim/consultoria-api/internal/api/handler/router"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/aggregating"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/authenticating"
	"github.com/jcarlosamorim/consultoria-api/internal/usecases/registering"
	"github.com/jcarlosamorim/consultoria-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Clients(portfolier aggregating.Portfolier, registrar registering.Registrar) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(portfolier),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodPost,
			Handler:     RegisterClient(registrar),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/clients/:id",
			Method:      http.MethodGet,
			Handler:     GetClient(portfolier),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(registrar registering.Registrar, reportRepo repository.ReportRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports",
			Method:      http.MethodPost,
			Handler:     RegisterMonthlyReport(registrar),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/reports/preview",
			Method:      http.MethodPost,
			Handler:     PreviewReportTotals(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/restaurants/:id/reports",
			Method:      http.MethodGet,
			Handler:     ListReportsByRestaurant(reportRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analytics(service aggregating.Portfolier) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/portfolio",
			Method:      http.MethodGet,
			Handler:     GetPortfolioSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/states",
			Method:      http.MethodGet,
			Handler:     GetStateSummaries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/analytics/regions",
			Method:      http.MethodGet,
			Handler:     GetRegionSummaries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/analytics/attention",
			Method:      http.MethodGet,
			Handler:     GetAttentionStates(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/analytics/kpis",
			Method:      http.MethodGet,
			Handler:     GetConsultingKPIs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/analytics/sectors",
			Method:      http.MethodGet,
			Handler:     GetSectorPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Export(service ClientsReportExporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/clients/export",
			Method:      http.MethodGet,
			Handler:     ExportClientsReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
