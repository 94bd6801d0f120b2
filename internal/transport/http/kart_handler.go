package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/karting-service/internal/app/karting"
	"github.com/light-bringer/karting-service/internal/app/karting/domain"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/get_kart"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/list_karts"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/register_kart"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/set_kart_availability"
)

// KartHandler serves /api/v1/karts and /api/v1/rates.
type KartHandler struct {
	app *karting.App
}

// NewKartHandler creates a KartHandler.
func NewKartHandler(app *karting.App) *KartHandler {
	return &KartHandler{app: app}
}

type createKartReq struct {
	Code      string `json:"code"`
	Available *bool  `json:"available"`
}

type availabilityReq struct {
	Available *bool `json:"available"`
}

// Create handles POST /api/v1/karts/. Karts start available unless told otherwise.
func (h *KartHandler) Create(c *gin.Context) {
	var req createKartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	available := req.Available == nil || *req.Available

	kart, err := h.app.RegisterKart.Execute(c.Request.Context(), &register_kart.Request{Code: req.Code, Available: available})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toKartResponse(kart))
}

// Get handles GET /api/v1/karts/:id.
func (h *KartHandler) Get(c *gin.Context) {
	kart, err := h.app.GetKart.Execute(c.Request.Context(), &get_kart.Request{KartID: c.Param("id")})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toKartResponse(kart))
}

// List handles GET /api/v1/karts/?available=true.
func (h *KartHandler) List(c *gin.Context) {
	karts, err := h.app.ListKarts.Execute(c.Request.Context(), &list_karts.Request{
		OnlyAvailable: c.Query("available") == "true",
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"karts":       mapAll(karts, toKartResponse),
		"total_count": len(karts),
	})
}

// SetAvailability handles PUT /api/v1/karts/:id/availability.
func (h *KartHandler) SetAvailability(c *gin.Context) {
	var req availabilityReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Available == nil {
		writeError(c, http.StatusBadRequest, "available is required")
		return
	}

	kart, err := h.app.SetKartAvailability.Execute(c.Request.Context(), &set_kart_availability.Request{
		KartID:    c.Param("id"),
		Available: *req.Available,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toKartResponse(kart))
}

// Rates handles GET /api/v1/rates/.
func (h *KartHandler) Rates(c *gin.Context) {
	rates := mapAll(h.app.ListRates.Execute(), func(r domain.Rate) rateResponse {
		return rateResponse{
			Option:          r.Option,
			Label:           r.Label,
			BasePrice:       r.BasePrice,
			DurationMinutes: r.DurationMinutes,
			Laps:            r.Laps,
		}
	})
	c.JSON(http.StatusOK, gin.H{"rates": rates})
}
