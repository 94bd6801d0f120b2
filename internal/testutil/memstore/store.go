// Package memstore is an in-memory stand-in for the Spanner repositories and
// committer. Repositories hand out real *spanner.Mutation values; the store
// remembers what each one means and applies them only when a plan commits,
// so "nothing persisted on failure" can be asserted without an emulator.
package memstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/models/m_client"
	"github.com/light-bringer/karting-service/internal/pkg/clock"
	"github.com/light-bringer/karting-service/internal/pkg/committer"
)

type clientRecord struct {
	id, rut, name        string
	cash, frequency      int64
	dateOfBirth          time.Time
	version              int64
	createdAt, updatedAt time.Time
}

type kartRecord struct {
	id, code             string
	available            bool
	createdAt, updatedAt time.Time
}

type bookingRecord struct {
	booking *domain.Booking
}

// Store holds all tables. The zero value is not usable; call New.
type Store struct {
	mu       sync.Mutex
	clk      clock.Clock
	clients  map[string]*clientRecord
	bookings map[string]*bookingRecord
	karts    map[string]*kartRecord
	events   []*contracts.OutboxEvent
	pending  map[*spanner.Mutation]func()

	// ReadErr, when set, is returned by every read.
	ReadErr error
	// CommitErr, when set, is returned by every commit and nothing is applied.
	CommitErr error
	// BeforeCommit runs inside the commit, before the version check.
	BeforeCommit func()

	commits int
}

// New creates an empty Store.
func New(clk clock.Clock) *Store {
	return &Store{
		clk:      clk,
		clients:  make(map[string]*clientRecord),
		bookings: make(map[string]*bookingRecord),
		karts:    make(map[string]*kartRecord),
		pending:  make(map[*spanner.Mutation]func()),
	}
}

func (s *Store) Clients() *ClientRepo   { return &ClientRepo{s: s} }
func (s *Store) Bookings() *BookingRepo { return &BookingRepo{s: s} }
func (s *Store) Karts() *KartRepo       { return &KartRepo{s: s} }
func (s *Store) Outbox() *OutboxRepo    { return &OutboxRepo{s: s} }

// Commits reports how many plans were applied.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// Events returns a copy of the outbox rows in insertion order.
func (s *Store) Events() []*contracts.OutboxEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*contracts.OutboxEvent, len(s.events))
	for i, e := range s.events {
		cp := *e
		out[i] = &cp
	}
	return out
}

// BookingCount returns the number of stored bookings.
func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

// SeedClient stores c directly, bypassing the commit path.
func (s *Store) SeedClient(c *domain.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c.ID()] = recordFromClient(c)
}

// SeedBooking stores b directly.
func (s *Store) SeedBooking(b *domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID()] = &bookingRecord{booking: b}
}

// SeedKart stores k directly.
func (s *Store) SeedKart(k *domain.Kart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.karts[k.ID()] = &kartRecord{id: k.ID(), code: k.Code(), available: k.Available(), createdAt: k.CreatedAt(), updatedAt: k.UpdatedAt()}
}

func (s *Store) register(mut *spanner.Mutation, apply func()) *spanner.Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[mut] = apply
	return mut
}

// Apply implements contracts.Committer.
func (s *Store) Apply(ctx context.Context, plan *committer.CommitPlan) error {
	return s.commit(plan, nil)
}

// ApplyWithVersionCheck implements contracts.Committer. Only the clients
// table carries a version column.
func (s *Store) ApplyWithVersionCheck(ctx context.Context, check committer.VersionCheck, plan *committer.CommitPlan) error {
	return s.commit(plan, &check)
}

func (s *Store) commit(plan *committer.CommitPlan, check *committer.VersionCheck) error {
	if plan.IsEmpty() {
		return nil
	}
	if s.BeforeCommit != nil {
		s.BeforeCommit()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CommitErr != nil {
		return s.CommitErr
	}

	if check != nil {
		if check.Table != m_client.TableName {
			return fmt.Errorf("memstore: version check on %s not supported", check.Table)
		}
		id, _ := check.Key[0].(string)
		rec, ok := s.clients[id]
		if !ok {
			return fmt.Errorf("%s row %v disappeared: %w", check.Table, check.Key, committer.ErrVersionConflict)
		}
		if rec.version != check.Expected {
			return fmt.Errorf("%s version expected %d, got %d: %w", check.Table, check.Expected, rec.version, committer.ErrVersionConflict)
		}
	}

	applies := make([]func(), 0, plan.Count())
	for _, mut := range plan.Mutations() {
		apply, ok := s.pending[mut]
		if !ok {
			return errors.New("memstore: mutation was not produced by this store")
		}
		applies = append(applies, apply)
	}
	for i, mut := range plan.Mutations() {
		applies[i]()
		delete(s.pending, mut)
	}
	s.commits++
	return nil
}

func recordFromClient(c *domain.Client) *clientRecord {
	return &clientRecord{
		id:          c.ID(),
		rut:         c.Rut(),
		name:        c.Name(),
		cash:        c.Cash(),
		frequency:   c.Frequency(),
		dateOfBirth: c.DateOfBirth(),
		version:     c.Version(),
		createdAt:   c.CreatedAt(),
		updatedAt:   c.UpdatedAt(),
	}
}

func (r *clientRecord) toDomain() *domain.Client {
	return domain.ReconstructClient(r.id, r.rut, r.name, r.cash, r.frequency, r.dateOfBirth, r.version, r.createdAt, r.updatedAt)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ contracts.Committer = (*Store)(nil)
