package core

import "time"

// Task is a pending agent invocation. It is created by the round controller
// (or by a Critic verdict that requests rework), owned by the task queue
// until dispatched, and discarded once its invocation terminates.
type Task struct {
	ID         string
	Role       Role
	Round      int
	Payload    string // interpreted per role: query, research text, draft, critique
	Attempts   int    // completed invocation attempts; retries re-enqueue with Attempts+1
	EnqueuedAt time.Time
}

// NewTask constructs a task for the given role and round.
func NewTask(role Role, round int, payload string) Task {
	return Task{
		ID:         NewID(),
		Role:       role,
		Round:      round,
		Payload:    payload,
		EnqueuedAt: time.Now().UTC(),
	}
}

// Request captures the original user input for one run. It is created once
// per Run call, is immutable, and is discarded when Run returns.
type Request struct {
	ID        string
	Input     string
	CreatedAt time.Time
}

// NewRequest constructs a request around the untrusted user input text.
func NewRequest(input string) Request {
	return Request{
		ID:        NewID(),
		Input:     input,
		CreatedAt: time.Now().UTC(),
	}
}
