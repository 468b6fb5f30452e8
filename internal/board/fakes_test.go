package board_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"activity-board/internal/board"
	"activity-board/internal/model"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) ListActivities(ctx context.Context) (model.Activities, error) {
	args := m.Called(ctx)
	acts, _ := args.Get(0).(model.Activities)
	return acts, args.Error(1)
}

func (m *mockAPI) Signup(ctx context.Context, activity, email string) (string, error) {
	args := m.Called(ctx, activity, email)
	return args.String(0), args.Error(1)
}

func (m *mockAPI) Unregister(ctx context.Context, activity, email string) (string, error) {
	args := m.Called(ctx, activity, email)
	return args.String(0), args.Error(1)
}

// serverError ведёт себя как отказ сервера с текстом detail.
type serverError struct {
	detail string
}

func (e serverError) Error() string       { return "rejected: " + e.detail }
func (e serverError) UserMessage() string { return e.detail }

var errNetwork = errors.New("connection refused")

type fakeView struct {
	mu       sync.Mutex
	events   []string
	rendered []board.BoardView
	message  *board.Message
	resets   int
}

func (v *fakeView) ShowLoading() {
	v.record("loading")
}

func (v *fakeView) ShowUnavailable() {
	v.record("unavailable")
}

func (v *fakeView) Render(bv board.BoardView) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, "render")
	v.rendered = append(v.rendered, bv)
}

func (v *fakeView) ResetForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, "reset")
	v.resets++
}

func (v *fakeView) ShowMessage(msg board.Message) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, "message")
	v.message = &msg
}

func (v *fakeView) HideMessage() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, "hide")
	v.message = nil
}

func (v *fakeView) record(e string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, e)
}

func (v *fakeView) Events() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.events...)
}

func (v *fakeView) Message() (board.Message, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.message == nil {
		return board.Message{}, false
	}
	return *v.message, true
}

func (v *fakeView) LastRender() (board.BoardView, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.rendered) == 0 {
		return board.BoardView{}, false
	}
	return v.rendered[len(v.rendered)-1], true
}

func (v *fakeView) Resets() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.resets
}

type fakeClock struct {
	mu    sync.Mutex
	delay []time.Duration
	funcs []func()
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delay = append(c.delay, d)
	c.funcs = append(c.funcs, f)
}

// Fire вызывает i-й запланированный колбэк.
func (c *fakeClock) Fire(i int) {
	c.mu.Lock()
	f := c.funcs[i]
	c.mu.Unlock()
	f()
}

func (c *fakeClock) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.funcs)
}

type confirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f confirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

func answer(ok bool, prompts *[]string) confirmFunc {
	return func(_ context.Context, prompt string) (bool, error) {
		if prompts != nil {
			*prompts = append(*prompts, prompt)
		}
		return ok, nil
	}
}

// memoryAPI изображает согласованный сервер в памяти.
type memoryAPI struct {
	mu   sync.Mutex
	acts model.Activities
}

func (m *memoryAPI) ListActivities(context.Context) (model.Activities, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(model.Activities, len(m.acts))
	for i, a := range m.acts {
		a.Participants = append([]string(nil), a.Participants...)
		out[i] = a
	}
	return out, nil
}

func (m *memoryAPI) Signup(_ context.Context, activity, email string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.acts {
		if m.acts[i].Name != activity {
			continue
		}
		for _, p := range m.acts[i].Participants {
			if p == email {
				return "", serverError{detail: "Student already signed up"}
			}
		}
		m.acts[i].Participants = append(m.acts[i].Participants, email)
		return "Signed up " + email + " for " + activity, nil
	}
	return "", serverError{detail: "Activity not found"}
}

func (m *memoryAPI) Unregister(_ context.Context, activity, email string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.acts {
		if m.acts[i].Name != activity {
			continue
		}
		for j, p := range m.acts[i].Participants {
			if p == email {
				m.acts[i].Participants = append(m.acts[i].Participants[:j], m.acts[i].Participants[j+1:]...)
				return "Unregistered " + email + " from " + activity, nil
			}
		}
		return "", serverError{detail: "Participant not found"}
	}
	return "", serverError{detail: "Activity not found"}
}
