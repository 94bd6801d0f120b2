package booking

import (
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/karting-service/internal/app/karting/contracts"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
)

func formatTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func toStruct(m map[string]interface{}) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to encode reply")
	}
	return s, nil
}

func bookingToMap(b *domain.Booking) map[string]interface{} {
	return map[string]interface{}{
		"id":               b.ID(),
		"client_rut":       b.ClientRut(),
		"fee_option":       b.FeeOption(),
		"persons":          b.Persons(),
		"date_booking":     formatTime(b.DateBooking()),
		"start_time":       formatTime(b.StartTime()),
		"end_time":         formatTime(b.EndTime()),
		"duration_minutes": b.DurationMinutes(),
		"special_day":      b.SpecialDay(),
		"main_person":      b.MainPerson(),
		"code":             b.Code(),
		"created_at":       formatTime(b.CreatedAt()),
	}
}

func voucherToMap(v *domain.Voucher) map[string]interface{} {
	return map[string]interface{}{
		"booking_id":       v.BookingID,
		"name":             v.Name,
		"rut":              v.Rut,
		"fee":              v.Fee,
		"tax":              v.Tax,
		"discount":         v.Discount,
		"date_booking":     formatTime(v.DateBooking),
		"fee_option":       v.FeeOption,
		"laps":             v.Laps,
		"duration_minutes": v.DurationMinutes,
		"persons":          v.Persons,
		"total_before_tax": v.TotalBeforeTax,
		"total":            v.Total,
	}
}

func clientToMap(c *domain.Client) map[string]interface{} {
	return map[string]interface{}{
		"id":            c.ID(),
		"rut":           c.Rut(),
		"name":          c.Name(),
		"cash":          c.Cash(),
		"frequency":     c.Frequency(),
		"date_of_birth": formatTime(c.DateOfBirth()),
		"version":       c.Version(),
		"created_at":    formatTime(c.CreatedAt()),
		"updated_at":    formatTime(c.UpdatedAt()),
	}
}

func kartToMap(k *domain.Kart) map[string]interface{} {
	return map[string]interface{}{
		"id":         k.ID(),
		"code":       k.Code(),
		"available":  k.Available(),
		"created_at": formatTime(k.CreatedAt()),
		"updated_at": formatTime(k.UpdatedAt()),
	}
}

func rateToMap(r domain.Rate) map[string]interface{} {
	return map[string]interface{}{
		"option":           r.Option,
		"label":            r.Label,
		"base_price":       r.BasePrice,
		"duration_minutes": r.DurationMinutes,
		"laps":             r.Laps,
	}
}

func eventToMap(e *contracts.OutboxEvent) map[string]interface{} {
	m := map[string]interface{}{
		"event_id":      e.EventID,
		"event_type":    e.EventType,
		"aggregate_id":  e.AggregateID,
		"payload":       e.Payload,
		"status":        e.Status,
		"retry_count":   e.RetryCount,
		"error_message": e.ErrorMessage,
		"created_at":    formatTime(e.CreatedAt),
		"processed_at":  nil,
	}
	if e.ProcessedAt != nil {
		m["processed_at"] = formatTime(*e.ProcessedAt)
	}
	return m
}

func listOf[T any](key string, items []T, conv func(T) map[string]interface{}) map[string]interface{} {
	out := make([]interface{}, 0, len(items))
	for _, item := range items {
		out = append(out, conv(item))
	}
	return map[string]interface{}{key: out, "total_count": int64(len(items))}
}
