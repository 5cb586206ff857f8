// Package testutil provides scripted agents and builders shared by tests.
// It lives under internal so the public API surface stays free of test
// helpers.
package testutil
