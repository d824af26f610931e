package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/skiresort/internal/domain"
	"github.com/Domenick1991/skiresort/internal/service/accommodations"
	"github.com/gin-gonic/gin"
)

type AccommodationHandler struct {
	service accommodations.AccommodationUseCase
}

type accommodationResponse struct {
	Name        string  `json:"name"`
	PricePerDay float64 `json:"price_per_day"`
	Available   bool    `json:"available"`
}

type lessonResponse struct {
	Level string  `json:"level"`
	Price float64 `json:"price"`
}

type liftPassResponse struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

func NewAccommodationHandler(service accommodations.AccommodationUseCase) *AccommodationHandler {
	return &AccommodationHandler{service: service}
}

func (h *AccommodationHandler) Register(router *gin.RouterGroup) {
	router.GET("/accommodations", h.list)
	router.GET("/lessons", h.lessons)
	router.GET("/lift-passes", h.liftPasses)
	router.GET("/lift-passes/cost", h.liftPassCost)
}

// list returns every accommodation, or only free ones with ?available=true.
func (h *AccommodationHandler) list(c *gin.Context) {
	var (
		list []domain.Accommodation
		err  error
	)
	if available, _ := strconv.ParseBool(c.Query("available")); available {
		list, err = h.service.ListAvailable(c.Request.Context())
	} else {
		list, err = h.service.List(c.Request.Context())
	}
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]accommodationResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, toAccommodationResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AccommodationHandler) lessons(c *gin.Context) {
	lessons := h.service.Lessons(c.Request.Context())
	resp := make([]lessonResponse, 0, len(lessons))
	for _, l := range lessons {
		resp = append(resp, lessonResponse{Level: string(l.Level), Price: l.Price.Dollars()})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AccommodationHandler) liftPasses(c *gin.Context) {
	passes := h.service.LiftPasses(c.Request.Context())
	resp := make([]liftPassResponse, 0, len(passes))
	for _, p := range passes {
		resp = append(resp, liftPassResponse{Name: p.Name, Cost: p.Cost.Dollars()})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AccommodationHandler) liftPassCost(c *gin.Context) {
	days, err := strconv.Atoi(c.Query("days"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days, "cost": h.service.LiftPassCost(days).Dollars()})
}

func toAccommodationResponse(a domain.Accommodation) accommodationResponse {
	return accommodationResponse{Name: a.Name, PricePerDay: a.PricePerDay.Dollars(), Available: a.Available}
}
