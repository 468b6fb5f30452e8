package http

import (
	"sync"

	"activity-board/internal/board"
)

// Status описывает состояние области со списком активностей.
type Status string

const (
	StatusLoading     Status = "loading"
	StatusReady       Status = "ready"
	StatusUnavailable Status = "unavailable"
)

// FormState хранит значения формы записи, которые нужно показать повторно.
type FormState struct {
	Email    string
	Activity string
}

// Snapshot содержит согласованный срез состояния страницы для отрисовки.
type Snapshot struct {
	Status  Status
	Board   board.BoardView
	Message *board.Message
	Form    FormState
	Prompt  *PromptView
}

// PageView реализует board.View: хранит последнее состояние страницы сессии.
// Безопасен для конкурентного использования.
type PageView struct {
	mu      sync.Mutex
	status  Status
	board   board.BoardView
	message *board.Message
	form    FormState
}

// NewPageView создаёт пустую страницу в состоянии загрузки.
func NewPageView() *PageView {
	return &PageView{status: StatusLoading}
}

func (v *PageView) ShowLoading() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status = StatusLoading
}

func (v *PageView) ShowUnavailable() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status = StatusUnavailable
}

func (v *PageView) Render(bv board.BoardView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status = StatusReady
	v.board = bv
}

func (v *PageView) ResetForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.form = FormState{}
}

func (v *PageView) ShowMessage(msg board.Message) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.message = &msg
}

func (v *PageView) HideMessage() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.message = nil
}

// SetForm запоминает введённые значения до ответа сервера.
func (v *PageView) SetForm(email, activity string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.form = FormState{Email: email, Activity: activity}
}

// Snapshot возвращает копию состояния.
func (v *PageView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := Snapshot{
		Status: v.status,
		Board:  v.board,
		Form:   v.form,
	}
	if v.message != nil {
		msg := *v.message
		s.Message = &msg
	}
	return s
}
