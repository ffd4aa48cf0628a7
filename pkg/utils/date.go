package utils

import (
	"strconv"
	"strings"
	"time"
)

// Epoch usada por planilhas para datas em número serial (dias desde 30/12/1899).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Formatos aceitos na coerção leniente de datas do ingest.
var lenientDateLayouts = []string{
	time.DateOnly,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"01/02/06",
	"02-01-2006",
}

// ParseDate interpreta estritamente uma data no formato YYYY-MM-DD.
func ParseDate(dateStr string) (*time.Time, error) {
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseDateLenient tenta interpretar a data em múltiplos formatos, incluindo
// números seriais de planilha. Retorna nil quando o valor não é uma data.
func ParseDateLenient(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	for _, layout := range lenientDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
			return &day
		}
	}

	// Números seriais de Excel; o limite superior cobre datas até ~2700.
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial >= 1 && serial < 300000 {
		day := excelEpoch.AddDate(0, 0, int(serial))
		return &day
	}

	return nil
}
