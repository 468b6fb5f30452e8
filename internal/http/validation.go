package http

import (
	"net/http"
	"strings"
)

// Поля email и activity формы записи проверяет сама доска: пустые значения
// превращаются в сообщение в баннере, а не в ошибку запроса.

// readSignupForm читает форму записи.
func readSignupForm(r *http.Request) (signupForm, error) {
	if err := r.ParseForm(); err != nil {
		return signupForm{}, ErrBadRequest("invalid form")
	}
	return signupForm{
		Email:    r.PostForm.Get("email"),
		Activity: r.PostForm.Get("activity"),
	}, nil
}

// readParticipantForm читает форму кнопки отписки; оба поля обязательны.
func readParticipantForm(r *http.Request) (participantForm, error) {
	if err := r.ParseForm(); err != nil {
		return participantForm{}, ErrBadRequest("invalid form")
	}
	f := participantForm{
		Activity: r.PostForm.Get("activity"),
		Email:    r.PostForm.Get("email"),
	}
	if f.Activity == "" {
		return participantForm{}, ErrBadRequest("activity is required")
	}
	if strings.TrimSpace(f.Email) == "" {
		return participantForm{}, ErrBadRequest("email is required")
	}
	return f, nil
}

// readConfirmForm читает ответ на запрос подтверждения.
func readConfirmForm(r *http.Request) (confirmForm, error) {
	if err := r.ParseForm(); err != nil {
		return confirmForm{}, ErrBadRequest("invalid form")
	}
	f := confirmForm{
		PromptID: r.PostForm.Get("prompt_id"),
	}
	if f.PromptID == "" {
		return confirmForm{}, ErrBadRequest("prompt_id is required")
	}

	switch r.PostForm.Get("answer") {
	case "yes":
		f.Accept = true
	case "no":
		f.Accept = false
	default:
		return confirmForm{}, ErrBadRequest("answer must be yes or no")
	}
	return f, nil
}
