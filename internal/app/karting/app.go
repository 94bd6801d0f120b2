// Package karting wires the booking engine's use cases and queries into the
// single surface the transports talk to.
package karting

import (
	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/get_booking"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/get_client"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/get_kart"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/issue_voucher"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/list_bookings"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/list_clients"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/list_events"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/list_karts"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/list_rates"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/create_booking"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/delete_booking"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/register_client"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/register_kart"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/set_kart_availability"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/update_client"
	"github.com/light-bringer/karting-service/internal/pkg/clock"
	"github.com/light-bringer/karting-service/internal/pkg/lock"
)

// Outbox is the write and read side of the outbox table.
type Outbox interface {
	contracts.OutboxRepository
	contracts.EventsReadModel
}

// Deps are the infrastructure pieces the use cases run on.
type Deps struct {
	Clients   contracts.ClientRepository
	Bookings  contracts.BookingRepository
	Karts     contracts.KartRepository
	Outbox    Outbox
	Committer contracts.Committer
	Locker    lock.Locker
	Clock     clock.Clock
}

// App holds every operation exposed upward.
type App struct {
	// Commands
	CreateBooking       *create_booking.Interactor
	DeleteBooking       *delete_booking.Interactor
	RegisterClient      *register_client.Interactor
	UpdateClient        *update_client.Interactor
	RegisterKart        *register_kart.Interactor
	SetKartAvailability *set_kart_availability.Interactor

	// Queries
	IssueVoucher *issue_voucher.Query
	GetBooking   *get_booking.Query
	ListBookings *list_bookings.Query
	GetClient    *get_client.Query
	ListClients  *list_clients.Query
	GetKart      *get_kart.Query
	ListKarts    *list_karts.Query
	ListRates    *list_rates.Query
	ListEvents   *list_events.Query
}

// New builds the App from d.
func New(d Deps) *App {
	return &App{
		CreateBooking:       create_booking.NewInteractor(d.Clients, d.Bookings, d.Outbox, d.Committer, d.Locker, d.Clock),
		DeleteBooking:       delete_booking.NewInteractor(d.Bookings, d.Outbox, d.Committer, d.Clock),
		RegisterClient:      register_client.NewInteractor(d.Clients, d.Outbox, d.Committer, d.Clock),
		UpdateClient:        update_client.NewInteractor(d.Clients, d.Outbox, d.Committer, d.Clock),
		RegisterKart:        register_kart.NewInteractor(d.Karts, d.Outbox, d.Committer, d.Clock),
		SetKartAvailability: set_kart_availability.NewInteractor(d.Karts, d.Outbox, d.Committer, d.Clock),

		IssueVoucher: issue_voucher.NewQuery(d.Bookings, d.Clients),
		GetBooking:   get_booking.NewQuery(d.Bookings),
		ListBookings: list_bookings.NewQuery(d.Bookings),
		GetClient:    get_client.NewQuery(d.Clients),
		ListClients:  list_clients.NewQuery(d.Clients),
		GetKart:      get_kart.NewQuery(d.Karts),
		ListKarts:    list_karts.NewQuery(d.Karts),
		ListRates:    list_rates.NewQuery(),
		ListEvents:   list_events.NewQuery(d.Outbox),
	}
}
