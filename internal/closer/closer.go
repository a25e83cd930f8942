package closer

import (
	"context"
)

// Closer is the interface that wraps the basic Close method.
type Closer interface {
	Close(ctx context.Context) error
}
