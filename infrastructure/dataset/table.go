// Package dataset lê os arquivos de previsão e recomendação produzidos externamente
// e os converte em registros tipados, validados no carregamento.
package dataset

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Table é o conteúdo bruto de um arquivo tabular: cabeçalho e linhas
type Table struct {
	Header  []string
	Records [][]string
}

// Options controla a leitura de arquivos
type Options struct {
	// Sheet é a aba usada em arquivos xlsx. Vazio significa a primeira aba.
	Sheet string
}

// ReadTable escolhe o leitor pela extensão do arquivo
func ReadTable(path string, opts Options) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return readCSV(path)
	case ".xlsx", ".xlsm":
		return readXLSX(path, opts.Sheet)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
}

// columnIndex devolve a posição da primeira coluna cujo nome normalizado
// está na lista de aliases, ou -1.
func (t *Table) columnIndex(aliases ...string) int {
	for i, h := range t.Header {
		name := normalizeHeader(h)
		for _, alias := range aliases {
			if name == alias {
				return i
			}
		}
	}
	return -1
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer(" ", "_", "-", "_", ".", "_").Replace(h)
	return h
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func blank(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

var (
	customerAliases  = []string{"customer_id", "customerid", "customer", "user_id", "userid"}
	dayAliases       = []string{"day", "horizon_day", "period"}
	predictedAliases = []string{"predicted_value", "predicted_sales", "predicted_activity", "activity_score", "prediction", "forecast"}
	itemAliases      = []string{"item_id", "itemid", "item", "product_id"}
	categoryAliases  = []string{"category_id", "categoryid", "category"}
	scoreAliases     = []string{"score", "behavior_score", "relevance"}
)
