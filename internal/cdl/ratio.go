package cdl

// CandleRatio - тип для выбора соотношения между свечами
type CandleRatio string

// Константы соотношений между свечами
const (
	BodyStrengthRatio  CandleRatio = "AMR" // Соотношение размеров тел (текущее/предыдущее)
	ClosePositionRatio CandleRatio = "CPR" // Положение Close в диапазоне предыдущей свечи
	VolumeRatio        CandleRatio = "VR"  // Соотношение объемов
)

// ListOfCandleRatio возвращает список соотношений между свечами с заданным сдвигом.
// Для первых shift свечей соотношение равно 0.
func ListOfCandleRatio(candles []Candle, r CandleRatio, shift int) []float64 {
	ratios := make([]float64, len(candles))
	if shift <= 0 {
		return ratios
	}

	for i := shift; i < len(candles); i++ {
		ratios[i] = candles[i].Ratio(r, &candles[i-shift])
	}
	return ratios
}

// Ratio вычисляет соотношение между текущей и предыдущей свечой
func (c *Candle) Ratio(r CandleRatio, pc *Candle) float64 {
	if pc == nil {
		return 0
	}

	switch r {
	case BodyStrengthRatio:
		if prev := pc.Arg(Body); prev != 0 {
			return c.Arg(Body) / prev
		}
	case ClosePositionRatio:
		if prevTr := pc.Arg(TrueRange); prevTr != 0 {
			return (c.C - pc.L) / prevTr
		}
	case VolumeRatio:
		if pc.Volume != 0 {
			return c.Volume / pc.Volume
		}
		return 1
	}
	return 0
}
