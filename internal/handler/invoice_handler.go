package handler

import (
	"net/http"

	"clientportal/internal/service"
	"clientportal/pkg/response"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// RegisterRoutes binds the invoice endpoints to the router group
func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	invoices := router.Group("/api/invoices")
	{
		invoices.POST("", h.CreateInvoice)
		invoices.PATCH("/:id", h.UpdateInvoice)
	}
}

// CreateInvoice creates a billing record in Draft status
// @Summary      Create invoice
// @Description  Creates an invoice with a globally unique number; payment status starts at Draft
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateInvoiceInput  true  "Create Invoice Payload"
// @Success      201      {object}  response.Response{data=model.Invoice}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var input service.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, invoice))
}

// UpdateInvoice applies a partial update to an invoice's payment fields
// @Summary      Update invoice
// @Description  Applies only the provided fields; explicit null clears payment_transaction_id
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Invoice ID"
// @Param        payload  body      service.UpdateInvoiceInput  true  "Update Invoice Payload"
// @Success      200      {object}  response.Response{data=model.Invoice}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/invoices/{id} [patch]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var input service.UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, invoice))
}
