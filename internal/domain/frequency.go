package domain

import (
	"errors"
	"time"
)

// Frequency define o espaçamento dos passos futuros do horizonte de previsão.
type Frequency string

const (
	FrequencyDaily   Frequency = "D"
	FrequencyWeekly  Frequency = "W"
	FrequencyMonthly Frequency = "M"
)

var ErrInvalidFrequency = errors.New("frequência de previsão inválida")

// ParseFrequency valida a frequência informada pelo cliente.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return Frequency(s), nil
	}
	return "", ErrInvalidFrequency
}

// Step avança o timestamp em um passo da frequência.
func (f Frequency) Step(t time.Time) time.Time {
	switch f {
	case FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}
