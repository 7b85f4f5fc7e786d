package ftx

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Signer подписывает запросы HMAC-SHA256 по схеме FTX: timestamp + method + path.
// Строка запроса в подпись не входит.
type Signer struct {
	secret []byte
}

// NewSigner создает подписчика с секретным ключом API
func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Payload возвращает строку подписи. ts - миллисекунды UTC, method - HTTP-метод
// в верхнем регистре, path - путь запроса, начинающийся с "/".
func (s *Signer) Payload(ts int64, method, path string) string {
	return strconv.FormatInt(ts, 10) + method + path
}

// Sign возвращает HMAC-SHA256 строки подписи в виде 64 символов hex в нижнем регистре
func (s *Signer) Sign(ts int64, method, path string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(s.Payload(ts, method, path)))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Signer) String() string {
	return "ftx.Signer{secret: ***}"
}

func (s *Signer) GoString() string {
	return s.String()
}
