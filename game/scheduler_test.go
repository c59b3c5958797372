package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsInOrder(t *testing.T) {
	s := NewScheduler()
	var got []string

	s.After(3, func() { got = append(got, "c") })
	s.After(1, func() { got = append(got, "a") })
	s.After(3, func() { got = append(got, "d") })
	s.After(2, func() { got = append(got, "b") })

	s.RunDue(2)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 2, s.Pending())

	s.RunDue(3)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got, "same tick runs in scheduling order")
	assert.Zero(t, s.Pending())
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.After(5, func() { fired = true })

	assert.True(t, s.Cancel(id))
	assert.False(t, s.Cancel(id), "second cancel is a no-op")

	s.RunDue(10)
	assert.False(t, fired)
}

func TestSchedulerCancelAfterRun(t *testing.T) {
	s := NewScheduler()
	id := s.After(1, func() {})
	s.Advance()
	assert.False(t, s.Cancel(id))
}

func TestSchedulerNeverRunsEarly(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(60, func() { fired++ })

	for i := 0; i < 59; i++ {
		s.Advance()
	}
	assert.Zero(t, fired)

	s.Advance()
	assert.Equal(t, 1, fired)
	assert.Equal(t, uint64(60), s.Now())
}

func TestSchedulerZeroDelayFromCallback(t *testing.T) {
	s := NewScheduler()
	var got []int
	s.After(1, func() {
		got = append(got, 1)
		s.After(0, func() { got = append(got, 2) })
	})

	s.Advance()
	assert.Equal(t, []int{1, 2}, got)
}

func TestSchedulerClear(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.After(1, func() { fired = true })
	s.Clear()

	s.RunDue(5)
	assert.False(t, fired)
	assert.False(t, s.Cancel(id))
	assert.Zero(t, s.Pending())
}
