package forecasting

import "errors"

var (
	// ErrNoHistory indica que a tabela de vendas está vazia
	ErrNoHistory = errors.New("nenhum histórico de vendas disponível")

	// ErrEmptyForecast indica que a biblioteca não retornou pontos
	ErrEmptyForecast = errors.New("a biblioteca de previsão não retornou pontos")
)
