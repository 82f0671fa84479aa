// Package ai relays farmer questions to an external completion service.
// Calls are synchronous, never retried and never cached; a failed call
// surfaces as an error for that one chat turn only.
package ai

import "context"

// Client answers one free-text farming question with one reply.
type Client interface {
	Complete(ctx context.Context, question string) (string, error)
}
