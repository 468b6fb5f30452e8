package board

import "context"

// Op обозначает логическую операцию доски, по которой вытесняются запросы.
type Op string

const (
	OpLoad       Op = "load"
	OpSignup     Op = "signup"
	OpUnregister Op = "unregister"
)

type task struct {
	op     Op
	id     uint64
	cancel context.CancelFunc
}

// taskSet хранит последний выданный запрос по каждой операции.
// Защищён Board.mu.
type taskSet struct {
	seq  uint64
	live map[Op]*task
}

func newTaskSet() *taskSet {
	return &taskSet{live: make(map[Op]*task)}
}

// start отменяет предыдущий запрос той же операции и регистрирует новый.
func (s *taskSet) start(ctx context.Context, op Op) (context.Context, *task, *task) {
	prev := s.live[op]
	if prev != nil {
		prev.cancel()
	}

	s.seq++
	ctx, cancel := context.WithCancel(ctx)
	t := &task{op: op, id: s.seq, cancel: cancel}
	s.live[op] = t
	return ctx, t, prev
}

func (s *taskSet) current(t *task) bool {
	return s.live[t.op] == t
}

func (s *taskSet) finish(t *task) {
	if s.live[t.op] == t {
		delete(s.live, t.op)
	}
	t.cancel()
}

func (s *taskSet) cancelAll() {
	for op, t := range s.live {
		t.cancel()
		delete(s.live, op)
	}
}
