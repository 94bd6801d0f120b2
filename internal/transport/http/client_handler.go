package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/karting-service/internal/app/karting"
	"github.com/light-bringer/karting-service/internal/app/karting/queries/get_client"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/register_client"
	"github.com/light-bringer/karting-service/internal/app/karting/usecases/update_client"
)

// ClientHandler serves /api/v1/clients.
type ClientHandler struct {
	app *karting.App
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(app *karting.App) *ClientHandler {
	return &ClientHandler{app: app}
}

type clientReq struct {
	Rut         string     `json:"rut"`
	Name        string     `json:"name"`
	Cash        int64      `json:"cash"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}

func (r clientReq) dob() time.Time {
	if r.DateOfBirth == nil {
		return time.Time{}
	}
	return *r.DateOfBirth
}

// Create handles POST /api/v1/clients/.
func (h *ClientHandler) Create(c *gin.Context) {
	var req clientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	client, err := h.app.RegisterClient.Execute(c.Request.Context(), &register_client.Request{
		Rut:         req.Rut,
		Name:        req.Name,
		Cash:        req.Cash,
		DateOfBirth: req.dob(),
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toClientResponse(client))
}

// Update handles PUT /api/v1/clients/:id. The rut cannot change.
func (h *ClientHandler) Update(c *gin.Context) {
	var req clientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	client, err := h.app.UpdateClient.Execute(c.Request.Context(), &update_client.Request{
		ClientID:    c.Param("id"),
		Name:        req.Name,
		Cash:        req.Cash,
		DateOfBirth: req.dob(),
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClientResponse(client))
}

// Get handles GET /api/v1/clients/:id.
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.app.GetClient.Execute(c.Request.Context(), &get_client.Request{ClientID: c.Param("id")})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClientResponse(client))
}

// List handles GET /api/v1/clients/. With ?rut= it returns that client only.
func (h *ClientHandler) List(c *gin.Context) {
	if rut := c.Query("rut"); rut != "" {
		client, err := h.app.GetClient.Execute(c.Request.Context(), &get_client.Request{Rut: rut})
		if err != nil {
			writeDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"clients": []clientResponse{toClientResponse(client)}, "total_count": 1})
		return
	}

	clients, err := h.app.ListClients.Execute(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"clients":     mapAll(clients, toClientResponse),
		"total_count": len(clients),
	})
}
