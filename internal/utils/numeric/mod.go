package numeric

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Avg возвращает среднее арифметическое значений слайса (0 для пустого слайса)
func Avg[V Number](s []V) float64 {
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s {
		sum += float64(v)
	}
	return sum / float64(len(s))
}

// Sum возвращает сумму значений слайса
func Sum[V Number](s []V) V {
	var sum V
	for _, v := range s {
		sum += v
	}
	return sum
}

// DecimalPlaces возвращает количество значащих знаков после запятой,
// например 0.0001 -> 4, 0.5 -> 1, 25 -> 0
func DecimalPlaces(v float64) int {
	exp := decimal.NewFromFloat(v).Exponent()
	if exp < 0 {
		return int(-exp)
	}
	return 0
}
