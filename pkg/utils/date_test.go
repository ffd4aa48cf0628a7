package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-forecast-api/pkg/utils"
)

func TestParseDate(t *testing.T) {
	date, err := utils.ParseDate("2024-02-10")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), *date)
}

func TestParseDate_FormatoInvalido(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
	}{
		{name: "Formato brasileiro", dateStr: "10/02/2024"},
		{name: "Texto livre", dateStr: "amanhã"},
		{name: "Data incompleta", dateStr: "2024-02"},
		{name: "Vazio não é data", dateStr: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := utils.ParseDate(tt.dateStr)

			assert.Nil(t, date)
			assert.Error(t, err)
		})
	}
}

func TestParseDateLenient(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected *time.Time
	}{
		{
			name:     "Formato ISO",
			raw:      "2024-02-10",
			expected: timePtr(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "Data com hora trunca para o dia",
			raw:      "2024-02-10 15:30:00",
			expected: timePtr(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "Barras no lugar de traços",
			raw:      "2024/02/10",
			expected: timePtr(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "Formato americano",
			raw:      "02/10/2024",
			expected: timePtr(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "Espaços nas bordas são tolerados",
			raw:      "  2024-02-10  ",
			expected: timePtr(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)),
		},
		{
			// 45332 dias após 30/12/1899
			name:     "Número serial de planilha",
			raw:      "45332",
			expected: timePtr(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "Vazio não é data",
			raw:      "",
			expected: nil,
		},
		{
			name:     "Texto livre não é data",
			raw:      "N/A",
			expected: nil,
		},
		{
			name:     "Serial fora da faixa plausível",
			raw:      "9999999",
			expected: nil,
		},
		{
			name:     "Serial negativo",
			raw:      "-5",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.ParseDateLenient(tt.raw))
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
