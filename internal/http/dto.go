// Package http реализует веб-интерфейс доски активностей поверх пакета board.
package http

import "activity-board/internal/board"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type signupForm struct {
	Email    string
	Activity string
}

type participantForm struct {
	Activity string
	Email    string
}

type confirmForm struct {
	PromptID string
	Accept   bool
}

type boardResponse struct {
	Status  Status          `json:"status"`
	Board   board.BoardView `json:"board"`
	Message *board.Message  `json:"message,omitempty"`
	Prompt  *PromptView     `json:"prompt,omitempty"`
}
