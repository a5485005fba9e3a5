package utils

import (
	"math"
	"sort"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	return Round(f, 2)
}

// Round arredonda para o número de casas decimais informado
func Round(f float64, decimals int) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	factor := math.Pow(10, float64(decimals))
	return math.Round(f*factor) / factor
}

// Percentile retorna o valor na posição floor((n-1)*p) dos valores ordenados.
// Não faz interpolação entre posições.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return sorted[PercentileIndex(len(sorted), p)]
}

// PercentileIndex calcula o índice usado por Percentile para n elementos
func PercentileIndex(n int, p float64) int {
	if n <= 0 {
		return 0
	}

	idx := int(math.Floor(float64(n-1) * p))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// Ratio devolve part/total em porcentagem com duas casas, ou zero quando total é zero
func Ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round(float64(part)/float64(total)*100, 2)
}
