package garageapi

import (
	"encoding/json"
	"io"
	"strings"
)

const maxErrorBody = 4 << 10

// errorResponse модель ошибки бэкенда
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// readMessage достает текст ошибки из тела ответа
func readMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))

	var e errorResponse
	if err := json.Unmarshal(raw, &e); err == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Error != "" {
			return e.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
