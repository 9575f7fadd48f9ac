package game

// toast is a transient on-screen message.
type toast struct {
	text    string
	expires uint64 // tick after which the toast disappears
}

// toastQueue keeps active toasts in arrival order. Expiry is tick-based
// so the simulation stays deterministic.
type toastQueue struct {
	items []toast
	ttl   uint64
}

func newToastQueue(ttlTicks int) *toastQueue {
	if ttlTicks < 1 {
		ttlTicks = 1
	}
	return &toastQueue{ttl: uint64(ttlTicks)}
}

// add enqueues a message expiring ttl ticks after now.
func (q *toastQueue) add(text string, now uint64) {
	q.items = append(q.items, toast{text: text, expires: now + q.ttl})
}

// active prunes expired toasts and returns the survivors' texts, oldest
// first.
func (q *toastQueue) active(now uint64) []string {
	kept := q.items[:0]
	for _, t := range q.items {
		if t.expires > now {
			kept = append(kept, t)
		}
	}
	q.items = kept

	if len(q.items) == 0 {
		return nil
	}
	texts := make([]string, len(q.items))
	for i, t := range q.items {
		texts[i] = t.text
	}
	return texts
}

func (q *toastQueue) len() int {
	return len(q.items)
}

func (q *toastQueue) ttlTicks() int {
	return int(q.ttl)
}
