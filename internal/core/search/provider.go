package search

import "context"

// Provider answers free-form questions the knowledge base cannot. It returns
// an empty string when it has no answer; errors never reach the end user.
type Provider interface {
	Search(ctx context.Context, query string) (string, error)
}
