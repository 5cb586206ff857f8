// Package model defines the normalized language-model abstraction the role
// agents are built on, plus a deterministic MockModel for tests and
// examples. Provider adapters live in the model/openai and model/anthropic
// subpackages.
package model
