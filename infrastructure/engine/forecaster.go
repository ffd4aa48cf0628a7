package engine

import (
	"math"
	"time"

	forecaster "github.com/aouyang1/go-forecaster"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/internal/usecases/forecasting"
)

// ForecastEngine adapta a biblioteca go-forecaster ao contrato do usecase
// de previsão. É o único ponto do sistema que conhece a API do modelo.
type ForecastEngine struct{}

func New() *ForecastEngine {
	return &ForecastEngine{}
}

// Fit ajusta um modelo com as opções padrão da biblioteca.
func (e *ForecastEngine) Fit(history []domain.HistoryPoint) (forecasting.Model, error) {
	t := make([]time.Time, len(history))
	y := make([]float64, len(history))
	for i, point := range history {
		t[i] = point.TS
		y[i] = point.Value
	}

	f, err := forecaster.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o forecaster")
	}

	if err := f.Fit(t, y); err != nil {
		return nil, errors.Wrap(err, "erro ao ajustar o modelo")
	}

	return &fittedModel{forecaster: f, trainedAt: t}, nil
}

// fittedModel é um modelo ajustado com escopo de requisição.
type fittedModel struct {
	forecaster *forecaster.Forecaster
	trainedAt  []time.Time
}

func (m *fittedModel) PredictAt(ts []time.Time) ([]domain.ForecastPoint, error) {
	res, err := m.forecaster.Predict(ts)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao avaliar o modelo")
	}

	return toForecastPoints(res)
}

func (m *fittedModel) PredictTimeline(periods int, freq domain.Frequency) ([]domain.ForecastPoint, error) {
	return m.PredictAt(extendTimeline(m.trainedAt, periods, freq))
}

// extendTimeline acrescenta periods passos de freq após o último timestamp
// de treino.
func extendTimeline(trainedAt []time.Time, periods int, freq domain.Frequency) []time.Time {
	timeline := make([]time.Time, 0, len(trainedAt)+periods)
	timeline = append(timeline, trainedAt...)

	if len(trainedAt) == 0 || periods <= 0 {
		return timeline
	}

	step := trainedAt[len(trainedAt)-1]
	for i := 0; i < periods; i++ {
		step = freq.Step(step)
		timeline = append(timeline, step)
	}

	return timeline
}

// toForecastPoints converte o resultado da biblioteca garantindo ds em
// ISO-8601, valores numéricos finitos e intervalo ordenado
// (yhat_lower <= yhat <= yhat_upper).
func toForecastPoints(res *forecaster.Results) ([]domain.ForecastPoint, error) {
	points := make([]domain.ForecastPoint, len(res.T))
	for i, ts := range res.T {
		yhat := res.Forecast[i]
		lower := res.Lower[i]
		upper := res.Upper[i]

		if !isFinite(yhat) || !isFinite(lower) || !isFinite(upper) {
			return nil, errors.Errorf("previsão não finita em %s", ts.Format(time.DateOnly))
		}

		if lower > yhat || yhat > upper {
			return nil, errors.Errorf("intervalo de previsão invertido em %s", ts.Format(time.DateOnly))
		}

		points[i] = domain.ForecastPoint{
			DS:        ts.Format(time.DateOnly),
			Yhat:      yhat,
			YhatLower: lower,
			YhatUpper: upper,
		}
	}

	return points, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
