package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/sales-forecast-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PredictTimeline responde o GET /api/predict com a linha do tempo completa:
// histórico mais o horizonte padrão de 30 dias.
func PredictTimeline(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		points, err := service.ForecastTimeline(r.Context())
		if err != nil {
			if errors.Is(err, forecasting.ErrNoHistory) {
				apiErrors.WriteError(w, apiErrors.ErrNoData)
				return
			}

			logrus.Error("Erro ao gerar previsão:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer)
			return
		}

		writeJSON(w, points)
	}
}

// pointForecastRequest é o corpo do POST /api/predict. Qty/Price/MRP são
// validados mas não alimentam a previsão; existem apenas como placeholder
// do contrato.
type pointForecastRequest struct {
	Date  *string  `json:"Date"`
	Qty   *float64 `json:"Qty"`
	Price *int     `json:"Price"`
	MRP   *float64 `json:"MRP"`
}

// PredictAt responde o POST /api/predict com um único ponto de previsão na
// data informada.
func PredictAt(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pointForecastRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidInput)
			return
		}

		if req.Date == nil || req.Qty == nil || req.Price == nil || req.MRP == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidInput)
			return
		}

		date, err := utils.ParseDate(*req.Date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidInput)
			return
		}

		point, err := service.ForecastAt(r.Context(), *date)
		if err != nil {
			// Mensagem herdada do contrato original para histórico vazio
			if errors.Is(err, forecasting.ErrNoHistory) {
				apiErrors.WriteError(w, apiErrors.ErrNoFileUploaded)
				return
			}

			logrus.Error("Erro ao gerar previsão pontual:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer)
			return
		}

		writeJSON(w, point)
	}
}

// horizonForecastRequest é o corpo do POST /forecast.
type horizonForecastRequest struct {
	Periods int    `json:"periods"`
	Freq    string `json:"freq"`
}

// Forecast responde o POST /forecast com os últimos periods pontos do
// horizonte solicitado.
func Forecast(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := horizonForecastRequest{Periods: 30, Freq: "D"}
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidInput)
				return
			}
		}

		if req.Periods <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidInput)
			return
		}

		freq, err := domain.ParseFrequency(req.Freq)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidInput)
			return
		}

		points, err := service.ForecastHorizon(r.Context(), req.Periods, freq)
		if err != nil {
			if errors.Is(err, forecasting.ErrNoHistory) {
				apiErrors.WriteError(w, apiErrors.ErrNoData)
				return
			}

			logrus.Error("Erro ao gerar previsão de horizonte:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer)
			return
		}

		writeJSON(w, points)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Error("Erro ao enviar resposta:", err)
	}
}
