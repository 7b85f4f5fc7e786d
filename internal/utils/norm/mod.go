package norm

import (
	"math"

	"github.com/nikita55612/ftxCollector/internal/utils/numeric"
)

// ZScore возвращает отклонение последнего значения от среднего в стандартных отклонениях.
// Для слайса из одного значения или с нулевым разбросом возвращает 0.
func ZScore[V numeric.Number](s []V) float64 {
	n := len(s)
	if n <= 1 {
		return 0
	}
	mean := numeric.Avg(s)
	var sumSqr float64
	for _, v := range s {
		diff := float64(v) - mean
		sumSqr += diff * diff
	}
	stdDev := math.Sqrt(sumSqr / float64(n))
	if stdDev == 0 {
		return 0
	}
	return (float64(s[n-1]) - mean) / stdDev
}
