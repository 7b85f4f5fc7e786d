package cdl

import (
	"strconv"
	"time"
)

// Candle - OHLCV свеча. StartTime сохраняет часовой пояс, переданный биржей.
type Candle struct {
	StartTime time.Time
	O         float64
	H         float64
	L         float64
	C         float64
	Volume    float64
}

// AsArr возвращает свечу в виде массива строк: время (мс), O, H, L, C, объем
func (c *Candle) AsArr() *[6]string {
	return &[6]string{
		strconv.FormatInt(c.StartTime.UnixMilli(), 10),
		strconv.FormatFloat(c.O, 'f', -1, 64),
		strconv.FormatFloat(c.H, 'f', -1, 64),
		strconv.FormatFloat(c.L, 'f', -1, 64),
		strconv.FormatFloat(c.C, 'f', -1, 64),
		strconv.FormatFloat(c.Volume, 'f', -1, 64),
	}
}
