package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// ContentCounter checks that content tables are readable.
type ContentCounter interface {
	CountAll(ctx context.Context) (int64, error)
}
