package flows

import (
	"fmt"
	"time"

	"github.com/vfg2006/emerging-areas-api/internal/domain"
	"github.com/vfg2006/emerging-areas-api/pkg/utils"
)

// ValidateMonth garante que o mês selecionado está dentro do controle do painel
func ValidateMonth(month int) error {
	if month < domain.MinMonth || month > domain.MaxMonth {
		return fmt.Errorf("%w: %d (aceito %d-%d)", ErrInvalidMonth, month, domain.MinMonth, domain.MaxMonth)
	}
	return nil
}

// MonthBounds retorna o primeiro dia do mês selecionado e o primeiro dia do mês seguinte.
// Dezembro + 1 vira janeiro do ano seguinte
func MonthBounds(year, month int) (from time.Time, to time.Time) {
	return utils.FirstDayOfMonth(year, month), utils.FirstDayOfMonth(year, month+1)
}

// FilterByMonth seleciona os registros do mês conforme o modo:
//   - cumulative: data <= primeiro dia do mês seguinte
//   - single_month: data == primeiro dia do mês
func FilterByMonth(records []domain.Record, year, month int, mode domain.FilterMode) ([]domain.Record, error) {
	from, to := MonthBounds(year, month)

	var keep func(date time.Time) bool
	switch mode {
	case domain.FilterModeCumulative:
		keep = func(date time.Time) bool { return !date.After(to) }
	case domain.FilterModeSingleMonth:
		keep = func(date time.Time) bool { return date.Equal(from) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilterMode, mode)
	}

	filtered := make([]domain.Record, 0, len(records))
	for _, record := range records {
		if keep(record.ObservationDate) {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}
