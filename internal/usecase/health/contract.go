package health

import "context"

// BackendPinger checks survey backend availability.
type BackendPinger interface {
	Ping(ctx context.Context) error
}

// DirChecker checks that the download directory is usable.
type DirChecker interface {
	Check(ctx context.Context) error
}
