package api

import (
	"net/http"

	"github.com/Domenick1991/skiresort/internal/reconcile"
	"github.com/Domenick1991/skiresort/internal/service/booking"
	"github.com/gin-gonic/gin"
)

// WorldHandler exposes reload and save of the whole resort state.
type WorldHandler struct {
	service booking.BookingUseCase
}

type outcomeResponse struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
	Error string `json:"error,omitempty"`
}

type reloadResponse struct {
	Customers           outcomeResponse `json:"customers"`
	Packages            outcomeResponse `json:"packages"`
	SeededDefaults      bool            `json:"seeded_defaults"`
	DuplicateCustomers  int             `json:"duplicate_customers"`
	OrphansImported     int             `json:"orphans_imported"`
	StaleAccommodations []string        `json:"stale_accommodations"`
}

func NewWorldHandler(service booking.BookingUseCase) *WorldHandler {
	return &WorldHandler{service: service}
}

func (h *WorldHandler) Register(router *gin.RouterGroup) {
	router.POST("/reload", h.reload)
	router.POST("/save", h.save)
}

func (h *WorldHandler) reload(c *gin.Context) {
	report, err := h.service.Reload(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReloadResponse(report))
}

func (h *WorldHandler) save(c *gin.Context) {
	if err := h.service.Save(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toReloadResponse(r reconcile.Report) reloadResponse {
	stale := r.StaleAccommodations
	if stale == nil {
		stale = []string{}
	}
	return reloadResponse{
		Customers:           toOutcomeResponse(r.Customers),
		Packages:            toOutcomeResponse(r.Packages),
		SeededDefaults:      r.SeededDefaults,
		DuplicateCustomers:  r.DuplicateCustomers,
		OrphansImported:     r.OrphansImported,
		StaleAccommodations: stale,
	}
}

func toOutcomeResponse(o reconcile.LoadOutcome) outcomeResponse {
	resp := outcomeResponse{Kind: o.Kind.String(), Count: o.Count}
	if o.Err != nil {
		resp.Error = o.Err.Error()
	}
	return resp
}
