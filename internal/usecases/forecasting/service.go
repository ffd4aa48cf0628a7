package forecasting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-forecast-api/infrastructure/repository"
	"github.com/vfg2006/sales-forecast-api/internal/config"
	"github.com/vfg2006/sales-forecast-api/internal/domain"
)

type Forecaster interface {
	// ForecastTimeline prevê sobre a linha do tempo completa: histórico
	// mais o horizonte padrão de configuração
	ForecastTimeline(ctx context.Context) ([]domain.ForecastPoint, error)

	// ForecastHorizon retorna apenas os últimos periods pontos do
	// horizonte solicitado
	ForecastHorizon(ctx context.Context, periods int, freq domain.Frequency) ([]domain.ForecastPoint, error)

	// ForecastAt prevê em uma única data
	ForecastAt(ctx context.Context, date time.Time) (*domain.ForecastPoint, error)
}

type Service struct {
	salesRepo repository.SalesRepository
	engine    Engine
	cfg       *config.Config
}

func NewService(
	salesRepo repository.SalesRepository,
	engine Engine,
	cfg *config.Config,
) Forecaster {
	return &Service{
		salesRepo: salesRepo,
		engine:    engine,
		cfg:       cfg,
	}
}

// fit recarrega o histórico e ajusta um modelo novo. Cada requisição refaz
// o ajuste; não há cache de modelo entre requisições.
func (s *Service) fit(ctx context.Context) (Model, error) {
	history, err := s.salesRepo.LoadHistory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar histórico de vendas")
	}

	if len(history) == 0 {
		return nil, ErrNoHistory
	}

	model, err := s.engine.Fit(history)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ajustar o modelo de previsão")
	}

	return model, nil
}

func (s *Service) ForecastTimeline(ctx context.Context) ([]domain.ForecastPoint, error) {
	model, err := s.fit(ctx)
	if err != nil {
		return nil, err
	}

	return model.PredictTimeline(s.cfg.Forecast.DefaultPeriods, domain.Frequency(s.cfg.Forecast.DefaultFreq))
}

func (s *Service) ForecastHorizon(ctx context.Context, periods int, freq domain.Frequency) ([]domain.ForecastPoint, error) {
	model, err := s.fit(ctx)
	if err != nil {
		return nil, err
	}

	points, err := model.PredictTimeline(periods, freq)
	if err != nil {
		return nil, err
	}

	if len(points) > periods {
		points = points[len(points)-periods:]
	}

	return points, nil
}

func (s *Service) ForecastAt(ctx context.Context, date time.Time) (*domain.ForecastPoint, error) {
	model, err := s.fit(ctx)
	if err != nil {
		return nil, err
	}

	points, err := model.PredictAt([]time.Time{date})
	if err != nil {
		return nil, err
	}

	if len(points) == 0 {
		return nil, ErrEmptyForecast
	}

	return &points[0], nil
}
