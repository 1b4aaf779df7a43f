package latency

import (
	"context"
	"errors"
)

// ErrUnavailable is reported by a Gateway when the upstream source
// cannot produce a latency figure for any reason (network failure,
// non-success status, timeout, unparseable response). It is the only
// failure a Gateway surfaces; callers fall back to the estimator.
var ErrUnavailable = errors.New("external latency data unavailable")

// Gateway abstracts a third-party network-quality data source
// (e.g. Cloudflare Radar).
type Gateway interface {
	Name() string
	Fetch(ctx context.Context, from, to Site) (Data, error)
}

// Store is the contract for the resolved connection-set slot. Writes
// replace the whole snapshot; snapshots from different resolution
// passes are never merged.
type Store interface {
	Replace(snapshot Snapshot)
	Latest() (Snapshot, error)
}
