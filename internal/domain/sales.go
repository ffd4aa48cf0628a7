package domain

import "time"

// SalesRow representa uma observação histórica de venda persistida
// na tabela products_sales. As linhas são criadas pelo ingest e nunca
// alteradas ou removidas por este serviço.
type SalesRow struct {
	Date  time.Time
	Qty   float64
	Price int
	MRP   float64
	Size  *string
}

// HistoryPoint é um ponto da série histórica (projeção de Date/Qty)
// usada como entrada do modelo de previsão.
type HistoryPoint struct {
	TS    time.Time
	Value float64
}

// ForecastPoint é uma estimativa pontual com intervalo de previsão.
// Invariante: YhatLower <= Yhat <= YhatUpper.
type ForecastPoint struct {
	DS        string  `json:"ds"`
	Yhat      float64 `json:"yhat"`
	YhatLower float64 `json:"yhat_lower"`
	YhatUpper float64 `json:"yhat_upper"`
}
