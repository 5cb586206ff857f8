package core

import "github.com/google/uuid"

// NewID generates a unique identifier for requests, tasks and artifacts.
func NewID() string { return uuid.NewString() }
