package handler

import (
	"net/http"

	"github.com/vfg2006/clash-paysheet/internal/api/handler/router"
	"github.com/vfg2006/clash-paysheet/internal/usecases/reporting"
	"github.com/vfg2006/clash-paysheet/internal/usecases/uploading"
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

func Sheets(service uploading.Uploader, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sheets",
			Method:  http.MethodPost,
			Handler: UploadSheet(service, maxUploadBytes),
		},
		{
			Path:    "/v1/sheets/:id",
			Method:  http.MethodGet,
			Handler: GetSheet(service),
		},
		{
			Path:    "/v1/sheets/:id/records",
			Method:  http.MethodGet,
			Handler: GetSheetRecords(service),
		},
		{
			Path:    "/v1/sheets/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSheet(service),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sheets/:id/report",
			Method:  http.MethodGet,
			Handler: GetReport(service),
		},
		{
			Path:    "/v1/exchange-rate",
			Method:  http.MethodGet,
			Handler: GetExchangeRate(service),
		},
		{
			Path:    "/v1/months",
			Method:  http.MethodGet,
			Handler: ListMonths(),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
