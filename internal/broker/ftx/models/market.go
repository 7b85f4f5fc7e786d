package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/nikita55612/ftxCollector/internal/utils/numeric"
)

// ServerResponse представляет стандартную обертку ответа FTX API
type ServerResponse struct {
	Success *bool           `json:"success"` // признак успешного запроса (может отсутствовать)
	Result  json.RawMessage `json:"result"`  // полезная нагрузка, декодируется отдельно
	Error   string          `json:"error"`   // описание ошибки при success=false
}

// Market представляет торговый инструмент (спот, фьючерс, перпетуальный контракт).
// Все поля, кроме Name, опциональны: nil означает, что биржа не передала значение.
type Market struct {
	Name                  string   `json:"name"`                  // уникальное имя инструмента (например BTC-PERP)
	Ask                   *float64 `json:"ask"`                   // лучшая цена продажи
	Bid                   *float64 `json:"bid"`                   // лучшая цена покупки
	Last                  *float64 `json:"last"`                  // цена последней сделки
	Price                 *float64 `json:"price"`                 // текущая цена инструмента
	Change1h              *float64 `json:"change1h"`              // изменение за 1 час
	Change24h             *float64 `json:"change24h"`             // изменение за 24 часа
	ChangeBod             *float64 `json:"changeBod"`             // изменение с начала дня
	Enabled               *bool    `json:"enabled"`               // доступен ли инструмент для торговли
	HighLeverageFeeExempt *bool    `json:"highLeverageFeeExempt"` // освобождение от комиссии за высокое плечо
	MinProvideSize        *float64 `json:"minProvideSize"`        // минимальный размер ордера
	SizeIncrement         *float64 `json:"sizeIncrement"`         // шаг изменения количества
	PostOnly              *bool    `json:"postOnly"`              // разрешены только post-only ордера
	PriceIncrement        *float64 `json:"priceIncrement"`        // шаг изменения цены (tick size)
	Type                  *string  `json:"type"`                  // тип инструмента (future, spot)
	BaseCurrency          *string  `json:"baseCurrency"`          // базовая валюта (только для спота)
	QuoteCurrency         *string  `json:"quoteCurrency"`         // котируемая валюта (только для спота)
	Underlying            *string  `json:"underlying"`            // базовый актив фьючерса
	QuoteVolume24h        *float64 `json:"quoteVolume24h"`        // объем за 24 часа в котируемой валюте
	VolumeUsd24h          *float64 `json:"volumeUsd24h"`          // объем за 24 часа в USD
	Restricted            *bool    `json:"restricted"`            // ограничен ли инструмент для юрисдикции
}

// Validate проверяет обязательные поля инструмента
func (m *Market) Validate() error {
	if m.Name == "" {
		return errors.New(`missing required field "name"`)
	}
	return nil
}

// IsFuture сообщает, является ли инструмент фьючерсом
func (m *Market) IsFuture() bool {
	return m.Type != nil && *m.Type == "future"
}

// IsSpot сообщает, является ли инструмент спотовой парой
func (m *Market) IsSpot() bool {
	return m.Type != nil && *m.Type == "spot"
}

// PricePrecision возвращает количество знаков после запятой в шаге цены.
// Второе значение false, если биржа не передала priceIncrement.
func (m *Market) PricePrecision() (int, bool) {
	if m.PriceIncrement == nil {
		return 0, false
	}
	return numeric.DecimalPlaces(*m.PriceIncrement), true
}

// Candle представляет сырые данные свечи. Указатели позволяют отличить
// отсутствующее поле от нулевого значения.
type Candle struct {
	StartTime *time.Time `json:"startTime"` // время открытия свечи (RFC3339)
	Open      *float64   `json:"open"`      // цена открытия
	High      *float64   `json:"high"`      // максимальная цена
	Low       *float64   `json:"low"`       // минимальная цена
	Close     *float64   `json:"close"`     // цена закрытия
	Volume    *float64   `json:"volume"`    // объем
}

// RecordName возвращает имя инструмента для сообщений об ошибках
func (m *Market) RecordName() string {
	return m.Name
}
