// Package booking exposes the karting engine over gRPC.
package booking

import (
	"context"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/karting-service/internal/app/karting"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/get_booking"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/get_client"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/issue_voucher"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/list_bookings"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/list_events"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/list_karts"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/create_booking"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/delete_booking"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/register_client"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/register_kart"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/set_kart_availability"
)

// Handler implements BookingServiceServer.
// It's a thin coordinator that delegates to use cases and queries.
type Handler struct {
	app *karting.App
}

// NewHandler creates a new gRPC booking handler.
func NewHandler(app *karting.App) *Handler {
	return &Handler{app: app}
}

var _ BookingServiceServer = (*Handler)(nil)

// CreateBooking prices, charges and stores a reservation.
func (h *Handler) CreateBooking(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	// 1. Validate and map the request
	appReq, err := createBookingRequest(fieldsOf(req))
	if err != nil {
		return nil, err
	}

	// 2. Call usecase
	booking, err := h.app.CreateBooking.Execute(ctx, appReq)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	// 3. Return response
	return toStruct(map[string]interface{}{"booking": bookingToMap(booking)})
}

func createBookingRequest(f fields) (*create_booking.Request, error) {
	rut, err := f.required("client_rut")
	if err != nil {
		return nil, err
	}
	feeOption, err := f.integer("fee_option")
	if err != nil {
		return nil, err
	}
	persons, err := f.integer("persons")
	if err != nil {
		return nil, err
	}
	dateBooking, err := f.timestamp("date_booking")
	if err != nil {
		return nil, err
	}
	startTime, err := f.timestamp("start_time")
	if err != nil {
		return nil, err
	}
	specialDay, err := f.boolean("special_day")
	if err != nil {
		return nil, err
	}
	mainPerson, err := f.str("main_person")
	if err != nil {
		return nil, err
	}
	code, err := f.integer("code")
	if err != nil {
		return nil, err
	}

	return &create_booking.Request{
		ClientRut:   rut,
		FeeOption:   feeOption,
		Persons:     persons,
		DateBooking: dateBooking,
		StartTime:   startTime,
		SpecialDay:  specialDay,
		MainPerson:  mainPerson,
		Code:        code,
	}, nil
}

// IssueVoucher regenerates a booking's receipt.
func (h *Handler) IssueVoucher(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := fieldsOf(req).required("booking_id")
	if err != nil {
		return nil, err
	}

	voucher, err := h.app.IssueVoucher.Execute(ctx, &issue_voucher.Request{BookingID: id})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return toStruct(map[string]interface{}{"voucher": voucherToMap(voucher)})
}

// GetBooking retrieves a booking by ID.
func (h *Handler) GetBooking(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := fieldsOf(req).required("booking_id")
	if err != nil {
		return nil, err
	}

	booking, err := h.app.GetBooking.Execute(ctx, &get_booking.Request{BookingID: id})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return toStruct(map[string]interface{}{"booking": bookingToMap(booking)})
}

// ListBookings lists bookings, optionally for one client.
func (h *Handler) ListBookings(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := fieldsOf(req)
	rut, err := f.str("client_rut")
	if err != nil {
		return nil, err
	}
	limit, err := f.integer("limit")
	if err != nil {
		return nil, err
	}

	bookings, err := h.app.ListBookings.Execute(ctx, &list_bookings.Request{ClientRut: rut, Limit: limit})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return toStruct(listOf("bookings", bookings, bookingToMap))
}

// DeleteBooking removes a booking.
func (h *Handler) DeleteBooking(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	// An empty id reaches the use case, which reports it as InvalidArgument.
	id, err := fieldsOf(req).str("booking_id")
	if err != nil {
		return nil, err
	}

	deleted, err := h.app.DeleteBooking.Execute(ctx, &delete_booking.Request{BookingID: id})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return toStruct(map[string]interface{}{"deleted": deleted})
}

// RegisterClient creates a client.
func (h *Handler) RegisterClient(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := fieldsOf(req)
	rut, err := f.str("rut")
	if err != nil {
		return nil, err
	}
	name, err := f.str("name")
	if err != nil {
		return nil, err
	}
	cash, err := f.integer("cash")
	if err != nil {
		return nil, err
	}
	dob, err := f.timestamp("date_of_birth")
	if err != nil {
		return nil, err
	}

	client, err := h.app.RegisterClient.Execute(ctx, &register_client.Request{
		Rut:         rut,
		Name:        name,
		Cash:        cash,
		DateOfBirth: deref(dob),
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return toStruct(map[string]interface{}{"client": clientToMap(client)})
}

// GetClient retrieves a client by client_id or rut.
func (h *Handler) GetClient(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := fieldsOf(req)
	id, err := f.str("client_id")
	if err != nil {
		return nil, err
	}
	rut, err := f.str("rut")
	if err != nil {
		return nil, err
	}

	client, err := h.app.GetClient.Execute(ctx, &get_client.Request{ClientID: id, Rut: rut})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return toStruct(map[string]interface{}{"client": clientToMap(client)})
}

// ListClients lists every client.
func (h *Handler) ListClients(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	clients, err := h.app.ListClients.Execute(ctx)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return toStruct(listOf("clients", clients, clientToMap))
}

// RegisterKart adds a kart to the fleet.
func (h *Handler) RegisterKart(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := fieldsOf(req)
	code, err := f.str("code")
	if err != nil {
		return nil, err
	}
	available := true
	if f.has("available") {
		if available, err = f.boolean("available"); err != nil {
			return nil, err
		}
	}

	kart, err := h.app.RegisterKart.Execute(ctx, &register_kart.Request{Code: code, Available: available})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return toStruct(map[string]interface{}{"kart": kartToMap(kart)})
}

// SetKartAvailability takes a kart in or out of service.
func (h *Handler) SetKartAvailability(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := fieldsOf(req)
	id, err := f.required("kart_id")
	if err != nil {
		return nil, err
	}
	if !f.has("available") {
		return nil, invalid("available is required")
	}
	available, err := f.boolean("available")
	if err != nil {
		return nil, err
	}

	kart, err := h.app.SetKartAvailability.Execute(ctx, &set_kart_availability.Request{KartID: id, Available: available})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return toStruct(map[string]interface{}{"kart": kartToMap(kart)})
}

// ListKarts lists the fleet.
func (h *Handler) ListKarts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	onlyAvailable, err := fieldsOf(req).boolean("only_available")
	if err != nil {
		return nil, err
	}

	karts, err := h.app.ListKarts.Execute(ctx, &list_karts.Request{OnlyAvailable: onlyAvailable})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return toStruct(listOf("karts", karts, kartToMap))
}

// ListRates returns the rate catalog.
func (h *Handler) ListRates(_ context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	return toStruct(listOf("rates", h.app.ListRates.Execute(), rateToMap))
}

// ListEvents retrieves domain events from the outbox.
func (h *Handler) ListEvents(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := fieldsOf(req)
	queryReq := &list_events.Request{}

	var err error
	if queryReq.EventType, err = f.optStr("event_type"); err != nil {
		return nil, err
	}
	if queryReq.AggregateID, err = f.optStr("aggregate_id"); err != nil {
		return nil, err
	}
	if queryReq.Status, err = f.optStr("status"); err != nil {
		return nil, err
	}
	if queryReq.Limit, err = f.integer("limit"); err != nil {
		return nil, err
	}

	events, err := h.app.ListEvents.Execute(ctx, queryReq)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return toStruct(listOf("events", events, eventToMap))
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
