package repo

import (
	"context"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/models/m_booking"
	"github.com/light-bringer/karting-service/internal/pkg/query"
)

// BookingRepo implements BookingRepository for Spanner.
type BookingRepo struct {
	client *spanner.Client
	model  *m_booking.Model
}

// NewBookingRepo creates a new BookingRepo.
func NewBookingRepo(client *spanner.Client) contracts.BookingRepository {
	return &BookingRepo{
		client: client,
		model:  m_booking.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a booking.
func (r *BookingRepo) InsertMut(b *domain.Booking) *spanner.Mutation {
	return r.model.InsertMut(&m_booking.Data{
		BookingID:       b.ID(),
		ClientRut:       b.ClientRut(),
		FeeOption:       b.FeeOption(),
		Persons:         b.Persons(),
		DateBooking:     b.DateBooking(),
		StartTime:       b.StartTime(),
		EndTime:         b.EndTime(),
		DurationMinutes: b.DurationMinutes(),
		SpecialDay:      b.SpecialDay(),
		MainPerson:      b.MainPerson(),
		Code:            b.Code(),
	})
}

// DeleteMut creates a mutation removing a booking.
func (r *BookingRepo) DeleteMut(bookingID string) *spanner.Mutation {
	return r.model.DeleteMut(bookingID)
}

// GetByID loads a booking by primary key.
func (r *BookingRepo) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	row, err := r.client.Single().ReadRow(ctx, m_booking.TableName, spanner.Key{bookingID}, m_booking.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrBookingNotFound
		}
		return nil, domain.NewStoreError(err)
	}
	return rowToBooking(row)
}

// List returns bookings, most recent start first.
func (r *BookingRepo) List(ctx context.Context, filter contracts.BookingFilter) ([]*domain.Booking, error) {
	q := query.From(m_booking.TableName).Select(m_booking.Columns...)
	if filter.ClientRut != "" {
		q = q.Where(query.Eq(m_booking.ClientRut, filter.ClientRut))
	}
	q = q.OrderBy(m_booking.StartTime, query.Desc).OrderBy(m_booking.BookingID, query.Asc)
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	iter := r.client.Single().Query(ctx, q.Build())
	defer iter.Stop()

	bookings := make([]*domain.Booking, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, domain.NewStoreError(err)
		}
		b, err := rowToBooking(row)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func rowToBooking(row *spanner.Row) (*domain.Booking, error) {
	var data m_booking.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, domain.NewStoreError(err)
	}
	return domain.ReconstructBooking(
		data.BookingID,
		data.ClientRut,
		data.FeeOption,
		data.Persons,
		data.DateBooking,
		data.StartTime,
		data.EndTime,
		data.DurationMinutes,
		data.SpecialDay,
		data.MainPerson,
		data.Code,
		data.CreatedAt,
	), nil
}
