package dataset

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

func readXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "abrir xlsx")
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("dataset: erro ao fechar xlsx")
		}
	}()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.Wrapf(ErrEmptyFile, "%s: nenhuma aba", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "ler aba %q", sheet)
	}

	return newTable(path, rows)
}
