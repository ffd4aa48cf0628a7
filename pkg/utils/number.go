package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseIntLenient aceita inteiros e reais de parte fracionária nula
// ("100", "100.0"). Retorna nil quando o valor não é um inteiro.
func ParseIntLenient(raw string) *int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if v, err := strconv.Atoi(s); err == nil {
		return &v
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		v := int(f)
		return &v
	}

	return nil
}

// ParseFloatLenient converte para real finito; nil quando não numérico.
func ParseFloatLenient(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	return &f
}
