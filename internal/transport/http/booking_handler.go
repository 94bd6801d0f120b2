package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/karting-service/internal/app/karting"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/get_booking"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/issue_voucher"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/list_bookings"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/create_booking"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/delete_booking"
)

// BookingHandler serves /api/v1/booking.
type BookingHandler struct {
	app *karting.App
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(app *karting.App) *BookingHandler {
	return &BookingHandler{app: app}
}

type createBookingReq struct {
	ClientRut   string     `json:"client_rut"`
	FeeOption   int64      `json:"fee_option"`
	Persons     int64      `json:"persons"`
	DateBooking *time.Time `json:"date_booking"`
	StartTime   *time.Time `json:"start_time"`
	SpecialDay  bool       `json:"special_day"`
	MainPerson  string     `json:"main_person"`
	Code        int64      `json:"code"`
}

// Create handles POST /api/v1/booking/.
func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ClientRut == "" {
		writeError(c, http.StatusBadRequest, "client_rut is required")
		return
	}

	booking, err := h.app.CreateBooking.Execute(c.Request.Context(), &create_booking.Request{
		ClientRut:   req.ClientRut,
		FeeOption:   req.FeeOption,
		Persons:     req.Persons,
		DateBooking: req.DateBooking,
		StartTime:   req.StartTime,
		SpecialDay:  req.SpecialDay,
		MainPerson:  req.MainPerson,
		Code:        req.Code,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(booking))
}

// List handles GET /api/v1/booking/?client_rut=&limit=.
func (h *BookingHandler) List(c *gin.Context) {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(c, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	bookings, err := h.app.ListBookings.Execute(c.Request.Context(), &list_bookings.Request{
		ClientRut: c.Query("client_rut"),
		Limit:     limit,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings":    mapAll(bookings, toBookingResponse),
		"total_count": len(bookings),
	})
}

// Get handles GET /api/v1/booking/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.app.GetBooking.Execute(c.Request.Context(), &get_booking.Request{BookingID: c.Param("id")})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(booking))
}

// Voucher handles GET /api/v1/booking/:id/voucher.
func (h *BookingHandler) Voucher(c *gin.Context) {
	voucher, err := h.app.IssueVoucher.Execute(c.Request.Context(), &issue_voucher.Request{BookingID: c.Param("id")})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVoucherResponse(voucher))
}

// Delete handles DELETE /api/v1/booking/:id.
func (h *BookingHandler) Delete(c *gin.Context) {
	deleted, err := h.app.DeleteBooking.Execute(c.Request.Context(), &delete_booking.Request{BookingID: c.Param("id")})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
