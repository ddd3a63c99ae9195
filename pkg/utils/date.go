package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos de data aceitos nas fontes tabulares
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
}

// ParseDay interpreta uma data em um dos formatos conhecidos e trunca para o dia (UTC)
func ParseDay(dateStr string) (time.Time, error) {
	value := strings.TrimSpace(dateStr)
	if value == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return TruncateDay(parsed), nil
		}
	}

	return time.Time{}, fmt.Errorf("data em formato desconhecido: %q", dateStr)
}

// TruncateDay descarta o horário mantendo o dia do calendário
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FirstDayOfMonth retorna o primeiro dia do mês. Meses fora de 1..12 são normalizados
// para o ano vizinho (13 vira janeiro do ano seguinte)
func FirstDayOfMonth(year int, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}
