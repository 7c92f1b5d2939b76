package utils

import (
	"fmt"
	"math"
)

// RoundWithTwoDecimalPlace arredonda para duas casas decimais, com metade
// sempre para longe de zero (arredondamento monetário padrão)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatBRL formata um valor monetário com o prefixo de moeda e duas casas
func FormatBRL(f float64) string {
	return fmt.Sprintf("R$ %.2f", f)
}
