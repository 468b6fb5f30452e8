package board_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-board/internal/board"
)

func TestBanner_AutoHide(t *testing.T) {
	view := &fakeView{}
	clock := &fakeClock{}
	b := board.NewBanner(view, clock, 0)

	msg := b.Show("Signed up", board.KindSuccess)
	assert.Equal(t, uint64(1), msg.ID)

	shown, ok := view.Message()
	require.True(t, ok)
	assert.Equal(t, "Signed up", shown.Text)
	assert.Equal(t, board.KindSuccess, shown.Kind)

	require.Equal(t, 1, clock.Len())
	assert.Equal(t, board.DefaultBannerDelay, clock.delay[0])

	clock.Fire(0)
	_, ok = view.Message()
	assert.False(t, ok)
	_, ok = b.Current()
	assert.False(t, ok)
}

func TestBanner_StaleTimerKeepsNewerMessage(t *testing.T) {
	view := &fakeView{}
	clock := &fakeClock{}
	b := board.NewBanner(view, clock, time.Second)

	b.Show("first", board.KindInfo)
	second := b.Show("second", board.KindError)
	assert.Greater(t, second.ID, uint64(1))

	// таймер первого сообщения не должен скрыть второе
	clock.Fire(0)
	cur, ok := b.Current()
	require.True(t, ok)
	assert.Equal(t, "second", cur.Text)

	shown, ok := view.Message()
	require.True(t, ok)
	assert.Equal(t, "second", shown.Text)

	clock.Fire(1)
	_, ok = view.Message()
	assert.False(t, ok)
}

func TestBanner_ClearThenTimer(t *testing.T) {
	view := &fakeView{}
	clock := &fakeClock{}
	b := board.NewBanner(view, clock, time.Second)

	b.Show("x", board.KindInfo)
	b.Clear()
	_, ok := b.Current()
	assert.False(t, ok)

	hides := 0
	clock.Fire(0)
	for _, e := range view.Events() {
		if e == "hide" {
			hides++
		}
	}
	assert.Equal(t, 1, hides)
}
