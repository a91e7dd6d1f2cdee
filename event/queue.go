package event

// QueueSize is the ring capacity, must be a power of two
const (
	QueueSize  = 256
	bufferMask = QueueSize - 1
)

// Queue is a fixed-size ring buffer of events
// Thread-Safety: none, owned by the single game loop
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events [QueueSize]Event
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, dropping the oldest unread one on overflow
func (q *Queue) Push(ev Event) {
	q.events[q.tail&bufferMask] = ev
	q.tail++
	if q.tail-q.head > QueueSize {
		q.head = q.tail - QueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
// Returns nil when empty
func (q *Queue) Consume() []Event {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	result := make([]Event, 0, n)
	for i := q.head; i < q.tail; i++ {
		result = append(result, q.events[i&bufferMask])
	}
	q.head = q.tail
	return result
}

// Len returns pending event count
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}

// Clear drops all pending events
func (q *Queue) Clear() {
	q.head = q.tail
}
