package handler

import (
	"net/http"

	"github.com/vfg2006/emerging-areas-api/internal/api/handler/router"
	"github.com/vfg2006/emerging-areas-api/internal/usecases/flows"
)

func Healthcheck(service flows.DashboardRenderer) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Dataset(service flows.DashboardRenderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset",
			Method:  http.MethodGet,
			Handler: GetDataset(service),
		},
	}
}

func Dashboard(service flows.DashboardRenderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/map",
			Method:  http.MethodGet,
			Handler: GetMap(service),
		},
		{
			Path:    "/v1/map/geojson",
			Method:  http.MethodGet,
			Handler: GetMapGeoJSON(service),
		},
		{
			Path:    "/v1/leaderboard",
			Method:  http.MethodGet,
			Handler: GetLeaderboard(service),
		},
		{
			Path:    "/v1/timeseries",
			Method:  http.MethodGet,
			Handler: GetTimeSeries(service),
		},
	}
}

func Charts(service flows.DashboardRenderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/charts/flows.png",
			Method:  http.MethodGet,
			Handler: GetFlowsChart(service),
		},
		{
			Path:    "/v1/charts/net-flow.png",
			Method:  http.MethodGet,
			Handler: GetNetFlowChart(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/" + CronJobTypeReload + "/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services, CronJobTypeReload),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
