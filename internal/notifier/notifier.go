package notifier

import "context"

// Notifier sends one notice listing the changed URLs.
type Notifier interface {
	Notify(ctx context.Context, urls []string) error
}
