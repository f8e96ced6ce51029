package handler

import (
	"net/http"

	"github.com/vfg2006/marketmate-api/internal/api/handler/router"
	"github.com/vfg2006/marketmate-api/internal/config"
	"github.com/vfg2006/marketmate-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketmate-api/internal/usecases/budgeting"
	"github.com/vfg2006/marketmate-api/internal/usecases/business"
	"github.com/vfg2006/marketmate-api/internal/usecases/leads"
	"github.com/vfg2006/marketmate-api/internal/usecases/tracking"
	"github.com/vfg2006/marketmate-api/pkg/middleware"
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

// Tracking expõe as rotas públicas chamadas pelos beacons dos visitantes
func Tracking(service tracking.Tracker, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/track/visitor",
			Method:  http.MethodGet,
			Handler: GetOrCreateVisitor(service, cfg),
		},
		{
			Path:    "/v1/track/pageview",
			Method:  http.MethodPost,
			Handler: RecordPageView(service, cfg),
		},
		{
			Path:    "/v1/track/action",
			Method:  http.MethodPost,
			Handler: RecordAction(service, cfg),
		},
	}
}

func Leads(service leads.LeadLister) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/leads",
			Method:      http.MethodGet,
			Handler:     ListLeads(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/leads/score",
			Method:      http.MethodPost,
			Handler:     ScoreProfile(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Campaigns(service budgeting.Allocator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/allocate",
			Method:      http.MethodPost,
			Handler:     AllocateBudget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOwner()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func BusinessProfiles(service business.ProfileManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/business",
			Method:      http.MethodPost,
			Handler:     SaveBusinessProfile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOwner()},
		},
		{
			Path:        "/v1/business/:id",
			Method:      http.MethodGet,
			Handler:     GetBusinessProfile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
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

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
