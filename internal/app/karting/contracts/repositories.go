package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/karting-service/internal/app/karting/domain"
)

// ClientRepository persists clients.
// Repositories return mutations, they don't apply them.
type ClientRepository interface {
	// InsertMut creates a mutation for inserting a new client
	InsertMut(client *domain.Client) *spanner.Mutation

	// UpdateMut creates a mutation for the client's dirty fields and bumps its
	// version. Returns nil when nothing changed.
	UpdateMut(client *domain.Client) *spanner.Mutation

	// GetByID returns domain.ErrClientNotFound when absent
	GetByID(ctx context.Context, clientID string) (*domain.Client, error)

	// GetByRut returns domain.ErrClientNotFound when absent
	GetByRut(ctx context.Context, rut string) (*domain.Client, error)

	List(ctx context.Context) ([]*domain.Client, error)
}

// BookingFilter narrows ListBookings. Zero values mean no filter.
type BookingFilter struct {
	ClientRut string
	Limit     int64
}

// BookingRepository persists bookings.
type BookingRepository interface {
	InsertMut(booking *domain.Booking) *spanner.Mutation
	DeleteMut(bookingID string) *spanner.Mutation

	// GetByID returns domain.ErrBookingNotFound when absent
	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	List(ctx context.Context, filter BookingFilter) ([]*domain.Booking, error)
}

// KartRepository persists the kart registry.
type KartRepository interface {
	InsertMut(kart *domain.Kart) *spanner.Mutation

	// UpdateMut returns nil when nothing changed
	UpdateMut(kart *domain.Kart) *spanner.Mutation

	// GetByID returns domain.ErrKartNotFound when absent
	GetByID(ctx context.Context, kartID string) (*domain.Kart, error)

	List(ctx context.Context) ([]*domain.Kart, error)
}
