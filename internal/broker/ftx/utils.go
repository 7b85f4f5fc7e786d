package ftx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/nikita55612/ftxCollector/internal/broker/ftx/models"
	"github.com/nikita55612/ftxCollector/internal/cdl"
)

// unwrapEnvelope проверяет обертку ответа и возвращает элементы массива result.
// success=false считается ошибкой независимо от содержимого result.
func unwrapEnvelope(body []byte) ([]json.RawMessage, *Error) {
	var serverResponse models.ServerResponse
	if err := json.Unmarshal(body, &serverResponse); err != nil {
		err = fmt.Errorf("malformed response envelope: %w", err)
		return nil, NewError(EnvelopeErrorT, err)
	}
	if serverResponse.Success != nil && !*serverResponse.Success {
		msg := serverResponse.Error
		if msg == "" {
			msg = "no error message"
		}
		err := fmt.Errorf("exchange reported failure: %s", msg)
		return nil, NewError(EnvelopeErrorT, err)
	}

	result := bytes.TrimSpace(serverResponse.Result)
	if len(result) == 0 || bytes.Equal(result, []byte("null")) {
		return nil, NewError(EnvelopeErrorT, errors.New("response has no result field"))
	}
	if result[0] != '[' {
		return nil, NewError(EnvelopeErrorT, errors.New("result is not an array"))
	}

	var records []json.RawMessage
	if err := json.Unmarshal(result, &records); err != nil {
		err = fmt.Errorf("malformed result array: %w", err)
		return nil, NewError(EnvelopeErrorT, err)
	}
	return records, nil
}

// namedRecord реализуют записи, имя которых полезно в тексте ошибки
type namedRecord interface {
	RecordName() string
}

// decodeRecords декодирует каждый элемент result в R и преобразует в T.
// Первая же ошибка прерывает декодирование всего массива.
func decodeRecords[R any, T any](records []json.RawMessage, convert func(*R) (T, error)) ([]T, *Error) {
	items := make([]T, 0, len(records))
	for i, data := range records {
		var raw R
		err := json.Unmarshal(data, &raw)
		if err == nil {
			var item T
			if item, err = convert(&raw); err == nil {
				items = append(items, item)
				continue
			}
		}
		recordErr := &RecordError{Index: i, Err: err}
		if named, ok := any(&raw).(namedRecord); ok {
			recordErr.Name = named.RecordName()
		}
		return nil, NewError(RecordDecodeErrorT, recordErr)
	}
	return items, nil
}

// marketFromRaw проверяет обязательные поля инструмента
func marketFromRaw(m *models.Market) (models.Market, error) {
	if err := m.Validate(); err != nil {
		return models.Market{}, err
	}
	return *m, nil
}

// candleFromRaw преобразует сырые данные свечи в cdl.Candle
func candleFromRaw(c *models.Candle) (cdl.Candle, error) {
	missing := func(field string) error {
		return fmt.Errorf("missing required field %q", field)
	}
	switch {
	case c.StartTime == nil:
		return cdl.Candle{}, missing("startTime")
	case c.Open == nil:
		return cdl.Candle{}, missing("open")
	case c.High == nil:
		return cdl.Candle{}, missing("high")
	case c.Low == nil:
		return cdl.Candle{}, missing("low")
	case c.Close == nil:
		return cdl.Candle{}, missing("close")
	case c.Volume == nil:
		return cdl.Candle{}, missing("volume")
	}
	if *c.Volume < 0 {
		return cdl.Candle{}, fmt.Errorf("negative volume %v", *c.Volume)
	}
	return cdl.Candle{
		StartTime: *c.StartTime,
		O:         *c.Open,
		H:         *c.High,
		L:         *c.Low,
		C:         *c.Close,
		Volume:    *c.Volume,
	}, nil
}

// marketPath экранирует имя инструмента посегментно: "/" в имени спотовой
// пары (BTC/USD) остается разделителем пути, как того ожидает биржа
func marketPath(marketName string) string {
	segments := strings.Split(marketName, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return "/markets/" + strings.Join(segments, "/")
}
