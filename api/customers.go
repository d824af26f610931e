package api

import (
	"net/http"

	"github.com/Domenick1991/skiresort/internal/domain"
	"github.com/Domenick1991/skiresort/internal/service/customers"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	service customers.CustomerUseCase
}

type createCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	SkiLevel string `json:"ski_level" binding:"required"`
}

type customerResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	SkiLevel string `json:"ski_level"`
}

func NewCustomerHandler(service customers.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{service: service}
}

func (h *CustomerHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.GET("/next-id", h.nextID)
}

func (h *CustomerHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]customerResponse, 0, len(list))
	for _, cu := range list {
		resp = append(resp, toCustomerResponse(cu))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) create(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.service.Add(c.Request.Context(), customers.AddCustomerInput{
		Name:     req.Name,
		SkiLevel: req.SkiLevel,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCustomerResponse(*customer))
}

func (h *CustomerHandler) nextID(c *gin.Context) {
	id, err := h.service.NextID(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"next_id": id})
}

func toCustomerResponse(c domain.Customer) customerResponse {
	return customerResponse{ID: c.ID, Name: c.Name, SkiLevel: string(c.SkiLevel)}
}
