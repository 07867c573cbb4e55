package dataset

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/smartshop-insights/internal/domain"
)

// LoadForecast lê e valida um arquivo de previsão
func LoadForecast(path string, opts Options) (*domain.ForecastTable, error) {
	table, err := ReadTable(path, opts)
	if err != nil {
		return nil, err
	}

	forecast, err := ParseForecast(table)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}

	forecast.Source = path
	return forecast, nil
}

// ParseForecast converte a tabela bruta em linhas tipadas.
// Sem coluna de dia, o dia é a posição da linha dentro do cliente (1..N).
func ParseForecast(t *Table) (*domain.ForecastTable, error) {
	predictedIdx := t.columnIndex(predictedAliases...)
	if predictedIdx < 0 {
		return nil, errors.Wrap(ErrMissingColumn, "predicted_value")
	}

	customerIdx := t.columnIndex(customerAliases...)
	dayIdx := t.columnIndex(dayAliases...)

	type dayKey struct {
		customer domain.CustomerID
		day      int
	}

	out := &domain.ForecastTable{
		Rows:           make([]domain.ForecastRow, 0, len(t.Records)),
		CustomerScoped: customerIdx >= 0,
	}
	seen := make(map[dayKey]struct{}, len(t.Records))
	positions := make(map[domain.CustomerID]int)

	for i, record := range t.Records {
		line := i + 2 // linha 1 é o cabeçalho
		if blank(record) {
			continue
		}

		row := domain.ForecastRow{}

		var key dayKey
		if customerIdx >= 0 {
			id, err := domain.NormalizeCustomerCell(cell(record, customerIdx))
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedRow, "linha %d: %v", line, err)
			}
			row.CustomerID = &id
			key.customer = id
		}

		positions[key.customer]++

		if dayIdx >= 0 {
			day, err := parseDay(cell(record, dayIdx))
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedRow, "linha %d: dia %q inválido", line, cell(record, dayIdx))
			}
			row.Day = day
		} else {
			row.Day = positions[key.customer]
		}

		value, err := strconv.ParseFloat(cell(record, predictedIdx), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, errors.Wrapf(ErrMalformedRow, "linha %d: valor previsto %q inválido", line, cell(record, predictedIdx))
		}
		row.PredictedValue = value

		if err := ValidateRow(row); err != nil {
			return nil, errors.Wrapf(ErrMalformedRow, "linha %d: %v", line, err)
		}

		key.day = row.Day
		if _, dup := seen[key]; dup {
			return nil, errors.Wrapf(ErrMalformedRow, "linha %d: dia %d repetido", line, row.Day)
		}
		seen[key] = struct{}{}

		out.Rows = append(out.Rows, row)
	}

	return out, nil
}

// parseDay aceita "3" e "3.0"
func parseDay(raw string) (int, error) {
	if day, err := strconv.Atoi(raw); err == nil {
		return day, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int(f)) {
		return 0, ErrMalformedRow
	}

	return int(f), nil
}
