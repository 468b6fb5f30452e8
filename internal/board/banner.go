package board

import (
	"sync"
	"time"
)

// DefaultBannerDelay задаёт, через сколько скрывается сообщение.
const DefaultBannerDelay = 4 * time.Second

// MessageKind определяет вид сообщения в баннере.
type MessageKind string

const (
	KindInfo    MessageKind = "info"
	KindSuccess MessageKind = "success"
	KindError   MessageKind = "error"
)

// Message описывает одно сообщение баннера. ID монотонно растёт.
type Message struct {
	ID   uint64      `json:"id"`
	Text string      `json:"text"`
	Kind MessageKind `json:"kind"`
}

// MessageView отображает баннер.
type MessageView interface {
	ShowMessage(msg Message)
	HideMessage()
}

// Banner управляет общим статусным баннером, который скрыт или показывает одно сообщение.
// Новое сообщение заменяет старое; автоскрытие срабатывает только для того сообщения,
// которое его запланировало.
type Banner struct {
	mu    sync.Mutex
	view  MessageView
	clock Clock
	delay time.Duration

	seq     uint64
	current *Message
}

// NewBanner создаёт скрытый баннер.
func NewBanner(view MessageView, clock Clock, delay time.Duration) *Banner {
	if clock == nil {
		clock = realClock{}
	}
	if delay <= 0 {
		delay = DefaultBannerDelay
	}
	return &Banner{view: view, clock: clock, delay: delay}
}

// Show показывает сообщение и планирует его скрытие.
func (b *Banner) Show(text string, kind MessageKind) Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	msg := Message{ID: b.seq, Text: text, Kind: kind}
	b.current = &msg
	b.view.ShowMessage(msg)

	id := msg.ID
	b.clock.AfterFunc(b.delay, func() { b.expire(id) })
	return msg
}

// Clear немедленно скрывает баннер.
func (b *Banner) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.current = nil
	b.view.HideMessage()
}

// Current возвращает показанное сообщение, если баннер видим.
func (b *Banner) Current() (Message, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return Message{}, false
	}
	return *b.current, true
}

func (b *Banner) expire(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil || b.current.ID != id {
		return
	}
	b.current = nil
	b.view.HideMessage()
}
