package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidCustomerID indica que o identificador informado não é numérico
var ErrInvalidCustomerID = errors.New("customer id must be numeric")

// CustomerID é o identificador normalizado de um cliente. Tanto a entrada do
// operador quanto as células das tabelas passam por aqui antes de qualquer comparação.
type CustomerID int64

func (c CustomerID) String() string {
	return strconv.FormatInt(int64(c), 10)
}

// ParseCustomerID converte o texto livre digitado pelo operador em CustomerID
func ParseCustomerID(raw string) (CustomerID, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidCustomerID)
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCustomerID, raw)
	}

	return CustomerID(id), nil
}

// NormalizeCustomerCell normaliza uma célula vinda de planilha ou CSV.
// Exportações de dataframes costumam gravar ids inteiros como "42.0".
func NormalizeCustomerCell(raw string) (CustomerID, error) {
	value := strings.TrimSpace(raw)
	if id, err := strconv.ParseInt(value, 10, 64); err == nil {
		return CustomerID(id), nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCustomerID, raw)
	}

	// float64(math.MaxInt64) arredonda para 2^63, que já não cabe em int64
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidCustomerID, raw)
	}

	return CustomerID(int64(f)), nil
}
