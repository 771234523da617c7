package patient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cardioscreen/cardioscreen/internal/platform/session"
)

// ErrNotFound is returned when no record exists for the given patient ID.
var ErrNotFound = errors.New("patient: not found")

// Stored pairs a validated record with its session identity.
type Stored struct {
	ID        string    `json:"patient_id"`
	CreatedAt time.Time `json:"created_at"`
	Record    *Record   `json:"data"`
}

// Service manages collection and retrieval of patient records. Records
// live only in the session store and expire with it.
type Service struct {
	store  session.Store
	logger zerolog.Logger
}

func NewService(store session.Store, logger zerolog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Collect validates form input, assigns a patient ID and stores the
// record in the session store.
func (s *Service) Collect(ctx context.Context, in Input) (*Stored, error) {
	rec, err := NewRecord(in)
	if err != nil {
		return nil, err
	}
	stored := &Stored{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Record:    rec,
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	if err := s.store.Put(ctx, stored.ID, raw); err != nil {
		return nil, fmt.Errorf("store record: %w", err)
	}
	s.logger.Info().Str("patient_id", stored.ID).Msg("patient record collected")
	return stored, nil
}

// Get loads a stored record by patient ID.
func (s *Service) Get(ctx context.Context, id string) (*Stored, error) {
	raw, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load record: %w", err)
	}
	var stored Stored
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &stored, nil
}

// List returns the window of stored records at [offset, offset+limit),
// ordered by patient ID for stable pagination, plus the total count.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*Stored, int, error) {
	keys, err := s.store.Keys(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list records: %w", err)
	}
	sort.Strings(keys)
	total := len(keys)

	if offset >= total {
		return []*Stored{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}

	out := make([]*Stored, 0, end-offset)
	for _, key := range keys[offset:end] {
		stored, err := s.Get(ctx, key)
		if err != nil {
			// Record expired between Keys and Get; skip it.
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, 0, err
		}
		out = append(out, stored)
	}
	return out, total, nil
}

// Delete removes a stored record. Deleting an absent record is not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	s.logger.Info().Str("patient_id", id).Msg("patient record deleted")
	return nil
}
