package http

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"activity-board/internal/board"
)

// BoardFactory собирает доску для новой сессии.
type BoardFactory func(view board.View, confirm board.Confirmer) *board.Board

// Session объединяет доску одного браузера вместе с её страницей и подтверждениями.
type Session struct {
	ID      string
	Board   *board.Board
	View    *PageView
	Prompts *PromptConfirmer

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	lastSeen time.Time
	pending  chan struct{}
}

// Snapshot возвращает состояние страницы вместе с активным вопросом.
func (s *Session) Snapshot() Snapshot {
	snap := s.View.Snapshot()
	if p, ok := s.Prompts.Pending(); ok {
		snap.Prompt = &p
	}
	return snap
}

// Go запускает фоновое действие сессии, которое переживает HTTP-запрос
// (например, отписку, ждущую подтверждения). Канал закрывается по завершении.
func (s *Session) Go(fn func(ctx context.Context)) <-chan struct{} {
	done := make(chan struct{})

	s.mu.Lock()
	s.pending = done
	s.mu.Unlock()

	go func() {
		defer close(done)
		fn(s.ctx)
	}()
	return done
}

// Pending возвращает канал последнего фонового действия; nil, если его не было.
func (s *Session) Pending() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

func (s *Session) close() {
	s.cancel()
	s.Board.Close()
}

// SessionStore хранит сессии в памяти и вытесняет простаивающие дольше ttl.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session

	newBoard BoardFactory
	ttl      time.Duration
	now      func() time.Time
	log      *slog.Logger
}

// NewSessionStore создаёт хранилище сессий.
func NewSessionStore(newBoard BoardFactory, ttl time.Duration, log *slog.Logger) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		newBoard: newBoard,
		ttl:      ttl,
		now:      time.Now,
		log:      log,
	}
}

// Create заводит новую сессию и сохраняет её в хранилище.
func (st *SessionStore) Create() *Session {
	s := st.build()

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	st.log.Debug("session created", slog.String("session", s.ID))
	return s
}

// Transient собирает сессию, которая не попадает в хранилище. Нужна для
// запросов только на чтение от браузера без cookie; вызывающий закрывает её сам.
func (st *SessionStore) Transient() *Session {
	return st.build()
}

func (st *SessionStore) build() *Session {
	ctx, cancel := context.WithCancel(context.Background())
	view := NewPageView()
	prompts := NewPromptConfirmer()

	return &Session{
		ID:       uuid.NewString(),
		Board:    st.newBoard(view, prompts),
		View:     view,
		Prompts:  prompts,
		ctx:      ctx,
		cancel:   cancel,
		lastSeen: st.now(),
	}
}

// Get возвращает живую сессию и продлевает её.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}

	now := st.now()
	s.mu.Lock()
	expired := st.ttl > 0 && now.Sub(s.lastSeen) > st.ttl
	if !expired {
		s.lastSeen = now
	}
	s.mu.Unlock()

	if expired {
		delete(st.sessions, id)
		s.close()
		return nil, false
	}
	return s, true
}

// size возвращает число живых сессий.
func (st *SessionStore) size() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep закрывает сессии, простаивающие дольше ttl.
func (st *SessionStore) Sweep() int {
	if st.ttl <= 0 {
		return 0
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	evicted := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		idle := now.Sub(s.lastSeen)
		s.mu.Unlock()

		if idle > st.ttl {
			delete(st.sessions, id)
			s.close()
			evicted++
		}
	}
	if evicted > 0 {
		st.log.Info("sessions evicted",
			slog.Int("count", evicted),
			slog.Int("remaining", len(st.sessions)),
		)
	}
	return evicted
}

// Run периодически вызывает Sweep до отмены ctx.
func (st *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}

// Close закрывает все сессии.
func (st *SessionStore) Close() {
	st.mu.Lock()
	defer st.mu.Unlock()

	for id, s := range st.sessions {
		s.close()
		delete(st.sessions, id)
	}
}
