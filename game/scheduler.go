package game

import "container/heap"

// EventID identifies a scheduled callback so it can be cancelled
type EventID uint64

type scheduledEvent struct {
	id    EventID
	at    uint64
	seq   uint64
	fn    func()
	index int
}

// eventQueue orders events by fire tick, then by scheduling order
type eventQueue []*scheduledEvent

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *eventQueue) Push(x any) {
	ev := x.(*scheduledEvent)
	ev.index = len(*q)
	*q = append(*q, ev)
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	ev.index = -1
	*q = old[:n-1]
	return ev
}

// Scheduler runs callbacks after a number of simulation ticks.
// It only moves when the game ticks, so a paused game freezes every pending event.
type Scheduler struct {
	now    uint64
	seq    uint64
	nextID EventID
	queue  eventQueue
	byID   map[EventID]*scheduledEvent
}

// NewScheduler creates an empty scheduler at tick 0
func NewScheduler() *Scheduler {
	return &Scheduler{
		byID: make(map[EventID]*scheduledEvent),
	}
}

// Now returns the last tick the scheduler ran
func (s *Scheduler) Now() uint64 {
	return s.now
}

// After schedules fn to run delay ticks from now. A delay of 0 or less runs on the next RunDue.
func (s *Scheduler) After(delay int, fn func()) EventID {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.seq++
	ev := &scheduledEvent{
		id:  s.nextID,
		at:  s.now + uint64(delay),
		seq: s.seq,
		fn:  fn,
	}
	heap.Push(&s.queue, ev)
	s.byID[ev.id] = ev
	return ev.id
}

// Cancel removes a pending event. It reports false if the event already ran or never existed.
func (s *Scheduler) Cancel(id EventID) bool {
	ev, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)
	heap.Remove(&s.queue, ev.index)
	return true
}

// Pending returns the number of events waiting to fire
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// RunDue sets the clock to now and runs every event due at or before it.
// Events scheduled by a running callback with zero delay run in the same call.
func (s *Scheduler) RunDue(now uint64) {
	if now > s.now {
		s.now = now
	}
	for len(s.queue) > 0 && s.queue[0].at <= s.now {
		ev := heap.Pop(&s.queue).(*scheduledEvent)
		delete(s.byID, ev.id)
		ev.fn()
	}
}

// Advance moves the clock forward one tick and runs what became due
func (s *Scheduler) Advance() {
	s.RunDue(s.now + 1)
}

// Clear drops every pending event without running it
func (s *Scheduler) Clear() {
	s.queue = nil
	clear(s.byID)
}
