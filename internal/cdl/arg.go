package cdl

import (
	"math"
)

// CandleArg - тип для выбора параметра свечи
type CandleArg string

// Константы параметров свечи
const (
	HLC          CandleArg = "HLC" // Типичная цена (High+Low+Close)/3
	Volume       CandleArg = "V"   // Объем торгов
	TrueRange    CandleArg = "TR"  // Диапазон High-Low
	RateOfChange CandleArg = "ROC" // Изменение цены (C-O)/O
	PriceVolume  CandleArg = "PV"  // Цена*Объем (C*V)
	Body         CandleArg = "AM"  // Тело свечи |C-O|
	Direction    CandleArg = "Dir" // Направление: 1(бычья), -1(медвежья), 0(доджи)
)

// ListOfCandleArg возвращает список значений указанного параметра свечей
func ListOfCandleArg(candles []Candle, arg CandleArg) []float64 {
	list := make([]float64, len(candles))

	for i := range candles {
		list[i] = candles[i].Arg(arg)
	}

	return list
}

// Arg возвращает значение указанного параметра свечи
func (c *Candle) Arg(a CandleArg) float64 {
	switch a {
	case HLC:
		return (c.H + c.L + c.C) / 3
	case TrueRange:
		return c.H - c.L
	case RateOfChange:
		if c.O != 0 {
			return (c.C - c.O) / c.O
		}
	case Volume:
		return c.Volume
	case PriceVolume:
		return c.Volume * c.C
	case Body:
		return math.Abs(c.C - c.O)
	case Direction:
		if c.C > c.O {
			return 1
		} else if c.C < c.O {
			return -1
		}
		return 0
	}
	return 0
}
