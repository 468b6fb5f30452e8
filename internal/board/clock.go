package board

import "time"

// Clock планирует отложенные вызовы. Нужен, чтобы тесты не ждали реальные секунды.
type Clock interface {
	AfterFunc(d time.Duration, f func())
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
