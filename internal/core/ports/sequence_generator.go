package ports

import "context"

// SequenceGenerator hands out monotonically increasing values for a named
// counter. Concurrent calls for the same name never return the same value.
type SequenceGenerator interface {
	Next(ctx context.Context, name string) (int64, error)
}
