package persist

//go:generate go run go.uber.org/mock/mockgen -source=./persist.go -destination=./mocks/kv_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/internal/store"
	"frontdesk/shared/failure"
)

// KV is the external local-storage collaborator: one blob under one
// well-known key. If two processes open the same backing file the last
// write wins; there is no conflict detection.
type KV interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
}

// Committer writes the whole store envelope through to the KV after
// every successful mutation. A failed save is reported as a persistence
// failure but never rolls back in-memory state; the system keeps
// operating in memory until the next save succeeds.
type Committer struct {
	kv      KV
	store   *store.Store
	key     string
	version string
}

func NewCommitter(kv KV, st *store.Store, key, version string) *Committer {
	return &Committer{
		kv:      kv,
		store:   st,
		key:     key,
		version: version,
	}
}

// Commit snapshots the store and writes the envelope under the
// well-known key.
func (c *Committer) Commit(ctx context.Context) error {
	env := c.store.Snapshot(c.version)

	blob, err := json.Marshal(env)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode state envelope")

		return failure.Persistence(fmt.Errorf("encoding state envelope: %w", err)) //nolint:wrapcheck
	}

	if err := c.kv.Save(ctx, c.key, blob); err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to save state envelope, continuing in-memory only")

		return failure.Persistence(fmt.Errorf("saving state envelope: %w", err)) //nolint:wrapcheck
	}

	log.Debug().Str("key", c.key).Int("bytes", len(blob)).Msg("state envelope saved")

	return nil
}

// Restore loads the envelope from the KV into the store. A missing key
// leaves the store in its initial empty state. Unknown fields in the
// blob are ignored and missing ones default, so schema drift across
// versions never fails the load.
func (c *Committer) Restore(ctx context.Context) error {
	blob, found, err := c.kv.Load(ctx, c.key)
	if err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to load state envelope")

		return failure.Persistence(fmt.Errorf("loading state envelope: %w", err)) //nolint:wrapcheck
	}

	if !found {
		log.Info().Str("key", c.key).Msg("no saved state found, starting fresh")
		c.store.Restore(store.Envelope{})

		return nil
	}

	var env store.Envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		log.Error().Err(err).Str("key", c.key).Msg("failed to decode state envelope")

		return failure.Persistence(fmt.Errorf("decoding state envelope: %w", err)) //nolint:wrapcheck
	}

	c.store.Restore(env)

	log.Info().
		Str("key", c.key).
		Str("version", env.Version).
		Int("customers", len(env.Customers)).
		Int("rooms", len(env.Rooms)).
		Int("bookings", len(env.Bookings)).
		Int("payments", len(env.Payments)).
		Msg("state envelope loaded")

	return nil
}
