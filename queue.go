package pipeline

// queue is a FIFO of vertex ids backed by a ring buffer that doubles when full.
type queue struct {
	buf   []string
	head  int
	count int
}

func newQueue(capacity int) *queue {
	if capacity < 1 {
		capacity = 1
	}
	return &queue{buf: make([]string, capacity)}
}

func (q *queue) Len() int { return q.count }

func (q *queue) Push(id string) {
	if q.count == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.count)%len(q.buf)] = id
	q.count++
}

// Pop removes the oldest id. ok is false when the queue is empty.
func (q *queue) Pop() (id string, ok bool) {
	if q.count == 0 {
		return "", false
	}
	id = q.buf[q.head]
	q.buf[q.head] = ""
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return id, true
}

func (q *queue) grow() {
	buf := make([]string, len(q.buf)*2)
	for i := 0; i < q.count; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
