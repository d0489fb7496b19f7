// Package ledger keeps the ordered list of logged idle activities and writes
// it through to a key-value store on every change.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/idlewage/internal/domain"
	"github.com/alexanderramin/idlewage/internal/repository"
	"github.com/rs/zerolog/log"
)

// Key is the store key holding the JSON-encoded activity list.
const Key = "activities"

// Ledger is an append-only list of activities, oldest first. Entries can be
// removed by position or cleared together.
type Ledger struct {
	store repository.KVStore
	items []domain.Activity
}

// Load hydrates a Ledger from store. Malformed data is logged and skipped;
// only a failing store returns an error.
func Load(ctx context.Context, store repository.KVStore) (*Ledger, error) {
	l := &Ledger{store: store}

	blob, err := store.Get(ctx, Key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return l, nil
		}
		return nil, fmt.Errorf("loading activities: %w", err)
	}

	items, dropped, err := decodeActivities(blob)
	if err != nil {
		log.Warn().Err(err).Str("key", Key).Msg("Ignoring unreadable activity list")
		return l, nil
	}
	if dropped > 0 {
		log.Warn().Str("key", Key).Int("dropped", dropped).Msg("Dropped invalid activity records")
	}
	l.items = items
	return l, nil
}

// Append adds a to the end of the ledger. Activities without a positive
// duration are ignored and reported as not added.
func (l *Ledger) Append(ctx context.Context, a domain.Activity) (bool, error) {
	if a.Seconds <= 0 {
		return false, nil
	}
	next := make([]domain.Activity, len(l.items), len(l.items)+1)
	copy(next, l.items)
	next = append(next, a)
	if err := l.persist(ctx, next); err != nil {
		return false, err
	}
	l.items = next
	return true, nil
}

// RemoveAt deletes the activity at index i. An out-of-range index is a no-op.
func (l *Ledger) RemoveAt(ctx context.Context, i int) (bool, error) {
	if i < 0 || i >= len(l.items) {
		return false, nil
	}
	next := make([]domain.Activity, 0, len(l.items)-1)
	next = append(next, l.items[:i]...)
	next = append(next, l.items[i+1:]...)
	if err := l.persist(ctx, next); err != nil {
		return false, err
	}
	l.items = next
	return true, nil
}

// Clear empties the ledger and deletes its stored key.
func (l *Ledger) Clear(ctx context.Context) error {
	if err := l.store.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clearing activities: %w", err)
	}
	l.items = nil
	log.Debug().Str("key", Key).Msg("Cleared activities")
	return nil
}

// Len returns the number of activities.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Activities returns a copy of the activities in insertion order.
func (l *Ledger) Activities() []domain.Activity {
	out := make([]domain.Activity, len(l.items))
	copy(out, l.items)
	return out
}

// At returns the activity at index i.
func (l *Ledger) At(i int) (domain.Activity, bool) {
	if i < 0 || i >= len(l.items) {
		return domain.Activity{}, false
	}
	return l.items[i], true
}

// TotalSeconds sums the duration of every activity.
func (l *Ledger) TotalSeconds() int64 {
	var total int64
	for _, a := range l.items {
		total += a.Seconds
	}
	return total
}

// TotalEarnings values the whole ledger at perSecond.
func (l *Ledger) TotalEarnings(perSecond float64) float64 {
	return perSecond * float64(l.TotalSeconds())
}

func (l *Ledger) persist(ctx context.Context, items []domain.Activity) error {
	blob, err := encodeActivities(items)
	if err != nil {
		return err
	}
	if err := l.store.Set(ctx, Key, blob); err != nil {
		return fmt.Errorf("saving activities: %w", err)
	}
	log.Debug().Str("key", Key).Int("count", len(items)).Msg("Saved activities")
	return nil
}
