// Package queue provides the per-request task backlog. Tasks are FIFO
// within a role but dispatch in role-priority order (researcher before
// summarizer before critic before reflector) within the same round, and a
// (role, round) pair is admitted at most once; retries re-enter through
// Requeue, which preserves the pair's single admission.
package queue

import (
	"errors"
	"sync"

	"github.com/hupe1980/agentswarm/core"
)

// ErrDuplicate is returned when a task for a (role, round) pair that
// already has an in-flight or completed task is enqueued.
var ErrDuplicate = errors.New("task already admitted for role/round")

type pairKey struct {
	role  core.Role
	round int
}

// Queue is the ordered backlog of pending agent invocations for one
// request. The zero value is not usable; construct with New. Methods are
// safe for concurrent use, although the base pipeline drains sequentially.
type Queue struct {
	mu      sync.Mutex
	buckets map[core.Role][]core.Task
	seen    map[pairKey]struct{}
	size    int
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{
		buckets: make(map[core.Role][]core.Task, 4),
		seen:    make(map[pairKey]struct{}),
	}
}

// Enqueue admits a task. A (role, round) pair may only be admitted once;
// subsequent attempts return ErrDuplicate regardless of whether the first
// task is still pending, in flight, or already completed.
func (q *Queue) Enqueue(t core.Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	k := pairKey{role: t.Role, round: t.Round}
	if _, dup := q.seen[k]; dup {
		return ErrDuplicate
	}

	q.seen[k] = struct{}{}
	q.buckets[t.Role] = append(q.buckets[t.Role], t)
	q.size++

	return nil
}

// Requeue re-admits a previously dequeued task for retry. It bypasses
// duplicate suppression: the pair was already admitted and its invocation
// terminated retryably, so the same task returns with an incremented
// attempt count.
func (q *Queue) Requeue(t core.Task) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.buckets[t.Role] = append(q.buckets[t.Role], t)
	q.size++
}

// Dequeue removes and returns the highest-priority pending task, FIFO
// within a role. ok is false when the queue is empty.
func (q *Queue) Dequeue() (core.Task, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, role := range core.Roles() {
		bucket := q.buckets[role]
		if len(bucket) == 0 {
			continue
		}

		t := bucket[0]
		q.buckets[role] = bucket[1:]
		q.size--

		return t, true
	}

	return core.Task{}, false
}

// Size returns the number of pending tasks.
func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.size
}
