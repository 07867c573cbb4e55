package utils

import (
	"math"
	"strconv"
)

// Round arredonda para a quantidade de casas decimais informada
func Round(f float64, places int) float64 {
	if f == 0 {
		return 0
	}

	pow := math.Pow(10, float64(places))
	return math.Round(f*pow) / pow
}

// FormatNumber exibe até duas casas decimais, sem zeros à direita
func FormatNumber(f float64) string {
	return strconv.FormatFloat(Round(f, 2), 'f', -1, 64)
}
