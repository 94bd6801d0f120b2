package http

import (
	"time"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
)

type bookingResponse struct {
	ID              string    `json:"id"`
	ClientRut       string    `json:"client_rut"`
	FeeOption       int64     `json:"fee_option"`
	Persons         int64     `json:"persons"`
	DateBooking     time.Time `json:"date_booking"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int64     `json:"duration_minutes"`
	SpecialDay      bool      `json:"special_day"`
	MainPerson      string    `json:"main_person"`
	Code            int64     `json:"code"`
	CreatedAt       time.Time `json:"created_at"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:              b.ID(),
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
		CreatedAt:       b.CreatedAt(),
	}
}

type voucherResponse struct {
	BookingID       string    `json:"booking_id"`
	Name            string    `json:"name"`
	Rut             string    `json:"rut"`
	Fee             int64     `json:"fee"`
	Tax             int64     `json:"tax"`
	Discount        float64   `json:"discount"`
	DateBooking     time.Time `json:"date_booking"`
	FeeOption       int64     `json:"fee_option"`
	Laps            int64     `json:"laps"`
	DurationMinutes int64     `json:"duration_minutes"`
	Persons         int64     `json:"persons"`
	TotalBeforeTax  int64     `json:"total_before_tax"`
	Total           int64     `json:"total"`
}

func toVoucherResponse(v *domain.Voucher) voucherResponse {
	return voucherResponse{
		BookingID:       v.BookingID,
		Name:            v.Name,
		Rut:             v.Rut,
		Fee:             v.Fee,
		Tax:             v.Tax,
		Discount:        v.Discount,
		DateBooking:     v.DateBooking,
		FeeOption:       v.FeeOption,
		Laps:            v.Laps,
		DurationMinutes: v.DurationMinutes,
		Persons:         v.Persons,
		TotalBeforeTax:  v.TotalBeforeTax,
		Total:           v.Total,
	}
}

type clientResponse struct {
	ID          string     `json:"id"`
	Rut         string     `json:"rut"`
	Name        string     `json:"name"`
	Cash        int64      `json:"cash"`
	Frequency   int64      `json:"frequency"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Version     int64      `json:"version"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toClientResponse(c *domain.Client) clientResponse {
	resp := clientResponse{
		ID:        c.ID(),
		Rut:       c.Rut(),
		Name:      c.Name(),
		Cash:      c.Cash(),
		Frequency: c.Frequency(),
		Version:   c.Version(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
	if dob := c.DateOfBirth(); !dob.IsZero() {
		resp.DateOfBirth = &dob
	}
	return resp
}

type kartResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toKartResponse(k *domain.Kart) kartResponse {
	return kartResponse{
		ID:        k.ID(),
		Code:      k.Code(),
		Available: k.Available(),
		CreatedAt: k.CreatedAt(),
		UpdatedAt: k.UpdatedAt(),
	}
}

type rateResponse struct {
	Option          int64  `json:"option"`
	Label           string `json:"label"`
	BasePrice       int64  `json:"base_price"`
	DurationMinutes int64  `json:"duration_minutes"`
	Laps            int64  `json:"laps"`
}

type eventResponse struct {
	EventID      string     `json:"event_id"`
	EventType    string     `json:"event_type"`
	AggregateID  string     `json:"aggregate_id"`
	Payload      string     `json:"payload"`
	Status       string     `json:"status"`
	RetryCount   int64      `json:"retry_count"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ProcessedAt  *time.Time `json:"processed_at,omitempty"`
}

func toEventResponse(e *contracts.OutboxEvent) eventResponse {
	return eventResponse{
		EventID:      e.EventID,
		EventType:    e.EventType,
		AggregateID:  e.AggregateID,
		Payload:      e.Payload,
		Status:       e.Status,
		RetryCount:   e.RetryCount,
		ErrorMessage: e.ErrorMessage,
		CreatedAt:    e.CreatedAt,
		ProcessedAt:  e.ProcessedAt,
	}
}

func mapAll[T, R any](items []T, conv func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, conv(item))
	}
	return out
}
