package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/karting-service/internal/app/karting/queries/list_events"
)

// EventsHandler handles HTTP requests for outbox events.
type EventsHandler struct {
	query *list_events.Query
}

// NewEventsHandler creates a new HTTP events handler.
func NewEventsHandler(query *list_events.Query) *EventsHandler {
	return &EventsHandler{query: query}
}

func optional(c *gin.Context, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}

// List handles GET /api/v1/events.
func (h *EventsHandler) List(c *gin.Context) {
	req := &list_events.Request{
		EventType:   optional(c, "event_type"),
		AggregateID: optional(c, "aggregate_id"),
		Status:      optional(c, "status"),
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.ParseInt(limitStr, 10, 64); err == nil && limit > 0 {
			req.Limit = limit
		}
	}

	events, err := h.query.Execute(c.Request.Context(), req)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed to fetch events: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":      mapAll(events, toEventResponse),
		"total_count": len(events),
	})
}
