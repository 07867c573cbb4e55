package dataset

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/smartshop-insights/internal/domain"
)

// LoadRecommendations lê e valida um arquivo de recomendações
func LoadRecommendations(path string, opts Options) (*domain.RecommendationTable, error) {
	table, err := ReadTable(path, opts)
	if err != nil {
		return nil, err
	}

	recs, err := ParseRecommendations(table)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}

	recs.Source = path
	return recs, nil
}

// ParseRecommendations mantém a ordem original das linhas; a ordenação estável
// por score depende disso para desempatar.
func ParseRecommendations(t *Table) (*domain.RecommendationTable, error) {
	itemIdx := t.columnIndex(itemAliases...)
	if itemIdx < 0 {
		return nil, errors.Wrap(ErrMissingColumn, "item_id")
	}

	categoryIdx := t.columnIndex(categoryAliases...)
	if categoryIdx < 0 {
		return nil, errors.Wrap(ErrMissingColumn, "category_id")
	}

	scoreIdx := t.columnIndex(scoreAliases...)
	if scoreIdx < 0 {
		return nil, errors.Wrap(ErrMissingColumn, "score")
	}

	customerIdx := t.columnIndex(customerAliases...)

	out := &domain.RecommendationTable{
		Rows:           make([]domain.RecommendationRow, 0, len(t.Records)),
		CustomerScoped: customerIdx >= 0,
	}

	for i, record := range t.Records {
		line := i + 2
		if blank(record) {
			continue
		}

		row := domain.RecommendationRow{
			ItemID:     cell(record, itemIdx),
			CategoryID: cell(record, categoryIdx),
		}

		if customerIdx >= 0 {
			id, err := domain.NormalizeCustomerCell(cell(record, customerIdx))
			if err != nil {
				return nil, errors.Wrapf(ErrMalformedRow, "linha %d: %v", line, err)
			}
			row.CustomerID = &id
		}

		score, err := strconv.ParseFloat(cell(record, scoreIdx), 64)
		if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
			return nil, errors.Wrapf(ErrMalformedRow, "linha %d: score %q inválido", line, cell(record, scoreIdx))
		}
		row.Score = score

		if err := ValidateRow(row); err != nil {
			return nil, errors.Wrapf(ErrMalformedRow, "linha %d: %v", line, err)
		}

		out.Rows = append(out.Rows, row)
	}

	return out, nil
}
