package handler

import (
	"net/http"

	"github.com/vfg2006/sales-forecast-api/internal/api/handler/router"
	"github.com/vfg2006/sales-forecast-api/internal/config"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/ingesting"
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

func Forecasts(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:    "/api/predict",
			Method:  http.MethodGet,
			Handler: PredictTimeline(service),
		},
		{
			Path:    "/api/predict",
			Method:  http.MethodPost,
			Handler: PredictAt(service),
		},
		{
			Path:    "/forecast",
			Method:  http.MethodPost,
			Handler: Forecast(service),
		},
	}
}

func Uploads(service ingesting.Ingester, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/api/upload-file",
			Method:  http.MethodPost,
			Handler: UploadFile(service, cfg.Upload.MaxSizeMB),
		},
	}
}
