package apiclient

import (
	"encoding/json"
	"fmt"
)

// APIError описывает отказ, о котором сообщил сам сервер (ответ не 2xx).
type APIError struct {
	Op     string
	Status int
	Detail string
}

// Error реализует интерфейс error для APIError.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.Status)
}

// UserMessage возвращает текст для показа пользователю; пустая строка означает, что текста нет.
func (e *APIError) UserMessage() string {
	return e.Detail
}

// responseBody описывает общий вид ответа API. detail бывает не строкой (ошибки валидации),
// такие значения игнорируются.
type responseBody struct {
	Detail  any    `json:"detail"`
	Message string `json:"message"`
}

// parseBody разбирает тело ответа; при ошибке разбора возвращается пустой объект.
func parseBody(data []byte) responseBody {
	var body responseBody
	if err := json.Unmarshal(data, &body); err != nil {
		return responseBody{}
	}
	return body
}

func newAPIError(op string, status int, data []byte) *APIError {
	body := parseBody(data)

	detail, _ := body.Detail.(string)
	if detail == "" {
		detail = body.Message
	}

	return &APIError{
		Op:     op,
		Status: status,
		Detail: detail,
	}
}
