package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-forecast-api/internal/domain"
)

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected domain.Frequency
		wantErr  bool
	}{
		{name: "Diária", raw: "D", expected: domain.FrequencyDaily},
		{name: "Semanal", raw: "W", expected: domain.FrequencyWeekly},
		{name: "Mensal", raw: "M", expected: domain.FrequencyMonthly},
		{name: "Minúscula é rejeitada", raw: "d", wantErr: true},
		{name: "Valor desconhecido", raw: "Y", wantErr: true},
		{name: "Vazio", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			freq, err := domain.ParseFrequency(tt.raw)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidFrequency)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, freq)
		})
	}
}

func TestFrequency_Step(t *testing.T) {
	base := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		freq     domain.Frequency
		expected time.Time
	}{
		{name: "Diária avança um dia", freq: domain.FrequencyDaily, expected: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Semanal avança sete dias", freq: domain.FrequencyWeekly, expected: time.Date(2024, 2, 7, 0, 0, 0, 0, time.UTC)},
		{name: "Mensal avança um mês calendário", freq: domain.FrequencyMonthly, expected: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.freq.Step(base))
		})
	}
}
