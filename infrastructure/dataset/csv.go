package dataset

import (
	"encoding/csv"
	"os"

	"github.com/pkg/errors"
)

func readCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "abrir csv")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedRow, "ler csv %s: %v", path, err)
	}

	return newTable(path, rows)
}

func newTable(path string, rows [][]string) (*Table, error) {
	if len(rows) == 0 || blank(rows[0]) {
		return nil, errors.Wrapf(ErrEmptyFile, "%s", path)
	}

	return &Table{
		Header:  rows[0],
		Records: rows[1:],
	}, nil
}
