package memstore

import (
	"context"
	"sort"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/models/m_booking"
	"github.com/light-bringer/karting-service/internal/models/m_client"
	"github.com/light-bringer/karting-service/internal/models/m_kart"
	"github.com/light-bringer/karting-service/internal/models/m_outbox"
)

// ClientRepo implements contracts.ClientRepository in memory.
type ClientRepo struct{ s *Store }

func (r *ClientRepo) InsertMut(c *domain.Client) *spanner.Mutation {
	rec := recordFromClient(c)
	mut := spanner.Insert(m_client.TableName, []string{m_client.ClientID}, []interface{}{c.ID()})
	return r.s.register(mut, func() { r.s.clients[rec.id] = rec })
}

func (r *ClientRepo) UpdateMut(c *domain.Client) *spanner.Mutation {
	if !c.Changes().HasChanges() {
		return nil
	}
	rec := recordFromClient(c)
	rec.version = c.Version() + 1
	mut := spanner.Update(m_client.TableName, []string{m_client.ClientID}, []interface{}{c.ID()})
	return r.s.register(mut, func() {
		if existing, ok := r.s.clients[rec.id]; ok {
			rec.createdAt = existing.createdAt
		}
		r.s.clients[rec.id] = rec
	})
}

func (r *ClientRepo) GetByID(ctx context.Context, clientID string) (*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ReadErr != nil {
		return nil, domain.NewStoreError(r.s.ReadErr)
	}
	rec, ok := r.s.clients[clientID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return rec.toDomain(), nil
}

func (r *ClientRepo) GetByRut(ctx context.Context, rut string) (*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ReadErr != nil {
		return nil, domain.NewStoreError(r.s.ReadErr)
	}
	for _, rec := range r.s.clients {
		if rec.rut == rut {
			return rec.toDomain(), nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *ClientRepo) List(ctx context.Context) ([]*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ReadErr != nil {
		return nil, domain.NewStoreError(r.s.ReadErr)
	}
	out := make([]*domain.Client, 0, len(r.s.clients))
	for _, id := range sortedKeys(r.s.clients) {
		out = append(out, r.s.clients[id].toDomain())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

// BookingRepo implements contracts.BookingRepository in memory.
type BookingRepo struct{ s *Store }

func (r *BookingRepo) InsertMut(b *domain.Booking) *spanner.Mutation {
	mut := spanner.Insert(m_booking.TableName, []string{m_booking.BookingID}, []interface{}{b.ID()})
	return r.s.register(mut, func() {
		r.s.bookings[b.ID()] = &bookingRecord{booking: b}
	})
}

func (r *BookingRepo) DeleteMut(bookingID string) *spanner.Mutation {
	mut := m_booking.NewModel().DeleteMut(bookingID)
	return r.s.register(mut, func() {
		delete(r.s.bookings, bookingID)
	})
}

func (r *BookingRepo) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ReadErr != nil {
		return nil, domain.NewStoreError(r.s.ReadErr)
	}
	rec, ok := r.s.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return copyBooking(rec.booking), nil
}

func (r *BookingRepo) List(ctx context.Context, filter contracts.BookingFilter) ([]*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ReadErr != nil {
		return nil, domain.NewStoreError(r.s.ReadErr)
	}
	out := make([]*domain.Booking, 0, len(r.s.bookings))
	for _, id := range sortedKeys(r.s.bookings) {
		b := r.s.bookings[id].booking
		if filter.ClientRut != "" && b.ClientRut() != filter.ClientRut {
			continue
		}
		out = append(out, copyBooking(b))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime().After(out[j].StartTime()) })
	if filter.Limit > 0 && int64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func copyBooking(b *domain.Booking) *domain.Booking {
	return domain.ReconstructBooking(b.ID(), b.ClientRut(), b.FeeOption(), b.Persons(), b.DateBooking(),
		b.StartTime(), b.EndTime(), b.DurationMinutes(), b.SpecialDay(), b.MainPerson(), b.Code(), b.CreatedAt())
}

// KartRepo implements contracts.KartRepository in memory.
type KartRepo struct{ s *Store }

func (r *KartRepo) InsertMut(k *domain.Kart) *spanner.Mutation {
	rec := &kartRecord{id: k.ID(), code: k.Code(), available: k.Available(), createdAt: k.CreatedAt(), updatedAt: k.UpdatedAt()}
	mut := spanner.Insert(m_kart.TableName, []string{m_kart.KartID}, []interface{}{k.ID()})
	return r.s.register(mut, func() { r.s.karts[rec.id] = rec })
}

func (r *KartRepo) UpdateMut(k *domain.Kart) *spanner.Mutation {
	if !k.Changes().Dirty(domain.FieldAvailable) {
		return nil
	}
	id, available, updatedAt := k.ID(), k.Available(), k.UpdatedAt()
	mut := m_kart.NewModel().UpdateAvailabilityMut(id, available)
	return r.s.register(mut, func() {
		if rec, ok := r.s.karts[id]; ok {
			rec.available = available
			rec.updatedAt = updatedAt
		}
	})
}

func (r *KartRepo) GetByID(ctx context.Context, kartID string) (*domain.Kart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ReadErr != nil {
		return nil, domain.NewStoreError(r.s.ReadErr)
	}
	rec, ok := r.s.karts[kartID]
	if !ok {
		return nil, domain.ErrKartNotFound
	}
	return domain.ReconstructKart(rec.id, rec.code, rec.available, rec.createdAt, rec.updatedAt), nil
}

func (r *KartRepo) List(ctx context.Context) ([]*domain.Kart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ReadErr != nil {
		return nil, domain.NewStoreError(r.s.ReadErr)
	}
	out := make([]*domain.Kart, 0, len(r.s.karts))
	for _, id := range sortedKeys(r.s.karts) {
		rec := r.s.karts[id]
		out = append(out, domain.ReconstructKart(rec.id, rec.code, rec.available, rec.createdAt, rec.updatedAt))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out, nil
}

// OutboxRepo implements the outbox contracts in memory.
type OutboxRepo struct{ s *Store }

func (r *OutboxRepo) EnrichEvent(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return &contracts.OutboxEvent{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      m_outbox.StatusPending,
	}
}

func (r *OutboxRepo) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	cp := *event
	mut := spanner.Insert(m_outbox.TableName, []string{m_outbox.EventID}, []interface{}{event.EventID})
	return r.s.register(mut, func() {
		cp.CreatedAt = r.s.clk.Now()
		r.s.events = append(r.s.events, &cp)
	})
}

func (r *OutboxRepo) ListEvents(ctx context.Context, filter contracts.EventFilter) ([]*contracts.OutboxEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*contracts.OutboxEvent, 0)
	for i := len(r.s.events) - 1; i >= 0; i-- {
		e := r.s.events[i]
		if filter.EventType != nil && e.EventType != *filter.EventType {
			continue
		}
		if filter.AggregateID != nil && e.AggregateID != *filter.AggregateID {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		cp := *e
		out = append(out, &cp)
		if filter.Limit > 0 && int64(len(out)) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (r *OutboxRepo) FetchPending(ctx context.Context, limit int64) ([]*contracts.OutboxEvent, error) {
	status := m_outbox.StatusPending
	all, err := r.ListEvents(ctx, contracts.EventFilter{Status: &status})
	if err != nil {
		return nil, err
	}
	// ListEvents is newest first; the relay wants oldest first.
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	if limit > 0 && int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *OutboxRepo) MarkCompleted(ctx context.Context, eventID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.events {
		if e.EventID == eventID {
			now := r.s.clk.Now()
			e.Status = m_outbox.StatusCompleted
			e.ProcessedAt = &now
			e.ErrorMessage = ""
		}
	}
	return nil
}

func (r *OutboxRepo) MarkRetry(ctx context.Context, eventID, status string, retryCount int64, errMsg string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.events {
		if e.EventID == eventID {
			e.Status = status
			e.RetryCount = retryCount
			e.ErrorMessage = errMsg
			if status == m_outbox.StatusFailed {
				now := r.s.clk.Now()
				e.ProcessedAt = &now
			}
		}
	}
	return nil
}

var (
	_ contracts.ClientRepository  = (*ClientRepo)(nil)
	_ contracts.BookingRepository = (*BookingRepo)(nil)
	_ contracts.KartRepository    = (*KartRepo)(nil)
	_ contracts.OutboxRepository  = (*OutboxRepo)(nil)
	_ contracts.EventsReadModel   = (*OutboxRepo)(nil)
	_ contracts.OutboxQueue       = (*OutboxRepo)(nil)
)
