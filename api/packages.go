package api

import (
	"net/http"

	"github.com/Domenick1991/skiresort/internal/pricing"
	"github.com/Domenick1991/skiresort/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	service booking.BookingUseCase
}

type createPackageRequest struct {
	CustomerID    int    `json:"customer_id" binding:"required"`
	Accommodation string `json:"accommodation" binding:"required"`
}

type liftPassRequest struct {
	Days *int `json:"days" binding:"required"`
}

type addLessonsRequest struct {
	Level    string `json:"level" binding:"required"`
	Quantity int    `json:"quantity"`
}

type lessonLineResponse struct {
	Level    string  `json:"level"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type costResponse struct {
	Accommodation float64 `json:"accommodation"`
	Lessons       float64 `json:"lessons"`
	LiftPass      float64 `json:"lift_pass"`
	Total         float64 `json:"total"`
}

type packageResponse struct {
	ID            string                `json:"id"`
	Customer      customerResponse      `json:"customer"`
	Accommodation accommodationResponse `json:"accommodation"`
	LiftPassDays  int                   `json:"lift_pass_days"`
	Lessons       []lessonLineResponse  `json:"lessons"`
	Cost          costResponse          `json:"cost"`
	Summary       string                `json:"summary"`
}

func NewPackageHandler(service booking.BookingUseCase) *PackageHandler {
	return &PackageHandler{service: service}
}

func (h *PackageHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.GET("/:id", h.get)
	router.PUT("/:id/lift-pass", h.setLiftPass)
	router.POST("/:id/lessons", h.addLessons)
	router.GET("/:id/cost", h.cost)
}

func (h *PackageHandler) list(c *gin.Context) {
	views, err := h.service.ListPackages(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]packageResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, toPackageResponse(v))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PackageHandler) create(c *gin.Context) {
	var req createPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.service.CreatePackage(c.Request.Context(), booking.CreatePackageInput{
		CustomerID:    req.CustomerID,
		Accommodation: req.Accommodation,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPackageResponse(*view))
}

func (h *PackageHandler) get(c *gin.Context) {
	view, err := h.service.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPackageResponse(*view))
}

func (h *PackageHandler) setLiftPass(c *gin.Context) {
	var req liftPassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.service.SetLiftPassDays(c.Request.Context(), c.Param("id"), *req.Days)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPackageResponse(*view))
}

func (h *PackageHandler) addLessons(c *gin.Context) {
	var req addLessonsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.service.AddLessons(c.Request.Context(), c.Param("id"), booking.AddLessonsInput{
		Level:    req.Level,
		Quantity: req.Quantity,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPackageResponse(*view))
}

func (h *PackageHandler) cost(c *gin.Context) {
	quote, err := h.service.Quote(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCostResponse(quote))
}

func toPackageResponse(v booking.PackageView) packageResponse {
	resp := packageResponse{
		ID:            v.ID,
		Customer:      toCustomerResponse(v.Customer),
		Accommodation: toAccommodationResponse(v.Accommodation),
		LiftPassDays:  v.LiftPassDays,
		Lessons:       make([]lessonLineResponse, 0, len(v.Lessons)),
		Cost:          toCostResponse(v.Cost),
		Summary:       v.Summary,
	}
	for _, line := range v.Lessons {
		resp.Lessons = append(resp.Lessons, lessonLineResponse{
			Level:    string(line.Lesson.Level),
			Price:    line.Lesson.Price.Dollars(),
			Quantity: line.Quantity,
		})
	}
	return resp
}

func toCostResponse(b pricing.Breakdown) costResponse {
	return costResponse{
		Accommodation: b.Accommodation.Dollars(),
		Lessons:       b.Lessons.Dollars(),
		LiftPass:      b.LiftPass.Dollars(),
		Total:         b.Total.Dollars(),
	}
}
