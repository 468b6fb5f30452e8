package board

import "errors"

var (
	// ErrMissingFields возвращается, если не указан email или не выбрана активность.
	ErrMissingFields = errors.New("email and activity are required")

	// ErrDeclined возвращается, если пользователь отказался подтверждать отписку.
	ErrDeclined = errors.New("unregister declined")

	// ErrSuperseded возвращается, если запрос вытеснен более новым запросом той же операции.
	ErrSuperseded = errors.New("superseded by a newer request")
)

// Тексты, которые видит пользователь.
const (
	textMissingFields     = "Please provide an email and select an activity."
	textLoadRejected      = "Failed to load activities"
	textLoadFailed        = "Error loading activities"
	textSignupOK          = "Signed up successfully!"
	textSignupFailed      = "Signup failed"
	textUnregisterOK      = "Unregistered successfully"
	textUnregisterFailed  = "Unregister failed"
	textConfirmUnregister = "Unregister %s from %s?"
)

// userMessager реализуют ошибки, которые несут текст от сервера.
type userMessager interface {
	UserMessage() string
}

func isServerReported(err error) bool {
	var um userMessager
	return errors.As(err, &um)
}

// failureText выбирает текст ошибки: сообщение сервера, если оно есть, иначе fallback.
func failureText(err error, fallback string) string {
	var um userMessager
	if errors.As(err, &um) && um.UserMessage() != "" {
		return um.UserMessage()
	}
	return fallback
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
