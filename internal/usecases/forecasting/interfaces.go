package forecasting

import (
	"time"

	"github.com/vfg2006/sales-forecast-api/internal/domain"
)

// Engine define o contrato com a biblioteca de previsão. O ajuste é opaco:
// tendência, sazonalidade e intervalos de confiança são responsabilidade da
// biblioteca externa.
type Engine interface {
	// Fit ajusta um modelo sobre a série histórica. Pode levar segundos.
	Fit(history []domain.HistoryPoint) (Model, error)
}

// Model é um modelo ajustado, com escopo de requisição.
type Model interface {
	// PredictAt avalia o modelo exatamente nos timestamps informados,
	// preservando ordem e duplicatas.
	PredictAt(ts []time.Time) ([]domain.ForecastPoint, error)

	// PredictTimeline avalia a linha do tempo de treino estendida por
	// periods passos de freq e retorna todos os pontos gerados.
	PredictTimeline(periods int, freq domain.Frequency) ([]domain.ForecastPoint, error)
}
