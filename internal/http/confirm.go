package http

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrUnknownPrompt возвращается при ответе на подтверждение, которого уже нет.
var ErrUnknownPrompt = errors.New("confirmation prompt not found")

// PromptView описывает вопрос, ожидающий ответа пользователя.
type PromptView struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type prompt struct {
	PromptView
	answer chan bool
}

// PromptConfirmer реализует board.Confirmer через страницу: вопрос показывается
// в следующем ответе сервера, а ответ приходит отдельным запросом.
type PromptConfirmer struct {
	mu      sync.Mutex
	pending *prompt
	asked   chan struct{}
}

// NewPromptConfirmer создаёт подтверждатель без активного вопроса.
func NewPromptConfirmer() *PromptConfirmer {
	return &PromptConfirmer{asked: make(chan struct{})}
}

// Asked возвращает канал, который закроется при появлении следующего вопроса.
func (c *PromptConfirmer) Asked() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.asked
}

// Confirm публикует вопрос и ждёт ответа или отмены ctx.
// Уже отменённый запрос вопрос не публикует, чтобы не затереть вопрос более нового запроса.
func (c *PromptConfirmer) Confirm(ctx context.Context, text string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	p := &prompt{
		PromptView: PromptView{ID: uuid.NewString(), Text: text},
		answer:     make(chan bool, 1),
	}

	c.mu.Lock()
	// отмена могла случиться, пока ждали блокировку
	if err := ctx.Err(); err != nil {
		c.mu.Unlock()
		return false, err
	}
	c.pending = p
	close(c.asked)
	c.asked = make(chan struct{})
	c.mu.Unlock()

	defer c.drop(p)

	select {
	case ok := <-p.answer:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Resolve отвечает на активный вопрос с данным ID.
func (c *PromptConfirmer) Resolve(id string, ok bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil || c.pending.ID != id {
		return ErrUnknownPrompt
	}
	c.pending.answer <- ok
	c.pending = nil
	return nil
}

// Pending возвращает активный вопрос.
func (c *PromptConfirmer) Pending() (PromptView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return PromptView{}, false
	}
	return c.pending.PromptView, true
}

func (c *PromptConfirmer) drop(p *prompt) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == p {
		c.pending = nil
	}
}
