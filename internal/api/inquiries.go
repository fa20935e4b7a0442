package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elitecards/admin-console/internal/platform"
	"github.com/elitecards/admin-console/internal/types"
)

// InquiryGateway is the slice of the record gateway the inquiry handler needs.
type InquiryGateway interface {
	SubmitInquiry(ctx context.Context, sub platform.InquirySubmission) (types.Inquiry, error)
	ListInquiries(ctx context.Context) ([]types.Inquiry, error)
	GetInquiry(ctx context.Context, id string) (types.Inquiry, error)
	DeleteInquiry(ctx context.Context, id string) error
}

// InquiryHandler serves public inquiry submission and admin management.
type InquiryHandler struct {
	gw InquiryGateway
}

// NewInquiryHandler creates an inquiry handler.
func NewInquiryHandler(gw InquiryGateway) *InquiryHandler {
	return &InquiryHandler{gw: gw}
}

// RegisterPublicRoutes registers the unauthenticated submission route.
func (h *InquiryHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.POST("/inquiries", h.Submit)
}

// RegisterRoutes registers the admin inquiry routes.
func (h *InquiryHandler) RegisterRoutes(router *gin.RouterGroup) {
	inquiries := router.Group("/inquiries")
	{
		inquiries.GET("", h.List)
		inquiries.GET("/:id", h.Get)
		inquiries.DELETE("/:id", h.Delete)
	}
}

type inquiryRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Message  string `json:"message" binding:"required"`
}

// Submit forwards a public contact-form submission.
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req inquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	inquiry, err := h.gw.SubmitInquiry(c.Request.Context(), platform.InquirySubmission{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": inquiry})
}

// List returns all inquiries.
func (h *InquiryHandler) List(c *gin.Context) {
	inquiries, err := h.gw.ListInquiries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": inquiries})
}

// Get returns one inquiry.
func (h *InquiryHandler) Get(c *gin.Context) {
	inquiry, err := h.gw.GetInquiry(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": inquiry})
}

// Delete removes one inquiry.
func (h *InquiryHandler) Delete(c *gin.Context) {
	if err := h.gw.DeleteInquiry(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "inquiry deleted successfully"})
}
