package handler

import (
	"net/http"

	"clientportal/internal/service"
	"clientportal/pkg/response"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler serves the tenant endpoints plus the per-tenant
// collection reads (requests, documents, invoices).
type OrganizationHandler struct {
	orgService      service.OrganizationService
	requestService  service.RequestService
	documentService service.DocumentService
	invoiceService  service.InvoiceService
}

func NewOrganizationHandler(
	orgService service.OrganizationService,
	requestService service.RequestService,
	documentService service.DocumentService,
	invoiceService service.InvoiceService,
) *OrganizationHandler {
	return &OrganizationHandler{
		orgService:      orgService,
		requestService:  requestService,
		documentService: documentService,
		invoiceService:  invoiceService,
	}
}

// RegisterRoutes binds the organization endpoints to the router group
func (h *OrganizationHandler) RegisterRoutes(router *gin.RouterGroup) {
	orgs := router.Group("/api/organizations")
	{
		orgs.POST("", h.CreateOrganization)
		orgs.GET("", h.ListOrganizations)
		orgs.GET("/:id", h.GetOrganizationByID)
		orgs.GET("/:id/requests", h.GetRequestsByOrganization)
		orgs.GET("/:id/documents", h.GetDocumentsByOrganization)
		orgs.GET("/:id/invoices", h.GetInvoicesByOrganization)
	}
}

// CreateOrganization creates a new tenant
// @Summary      Create organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateOrganizationRequest  true  "Create Organization Payload"
// @Success      201      {object}  response.Response{data=model.Organization}
// @Failure      400      {object}  response.Response
// @Router       /api/organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	org, err := h.orgService.CreateOrganization(c.Request.Context(), req)
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, org))
}

// ListOrganizations returns every organization
// @Summary      List organizations
// @Tags         organizations
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.Organization}
// @Router       /api/organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.orgService.ListOrganizations(c.Request.Context())
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, orgs))
}

// GetOrganizationByID returns one organization, or an explicit not-found result
// @Summary      Get organization by id
// @Tags         organizations
// @Produce      json
// @Param        id   path      string  true  "Organization ID"
// @Success      200  {object}  response.Response{data=model.Organization}
// @Failure      404  {object}  response.Response
// @Router       /api/organizations/{id} [get]
func (h *OrganizationHandler) GetOrganizationByID(c *gin.Context) {
	org, err := h.orgService.GetOrganizationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}
	if org == nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "organization not found"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, org))
}

// GetRequestsByOrganization returns the organization's service requests.
// An unknown organization yields an empty collection, not an error.
// @Summary      List requests by organization
// @Tags         requests
// @Produce      json
// @Param        id   path      string  true  "Organization ID"
// @Success      200  {object}  response.Response{data=[]model.Request}
// @Failure      400  {object}  response.Response
// @Router       /api/organizations/{id}/requests [get]
func (h *OrganizationHandler) GetRequestsByOrganization(c *gin.Context) {
	requests, err := h.requestService.ListRequestsByOrganization(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, requests))
}

// GetDocumentsByOrganization returns the organization's document records
// @Summary      List documents by organization
// @Tags         documents
// @Produce      json
// @Param        id   path      string  true  "Organization ID"
// @Success      200  {object}  response.Response{data=[]model.Document}
// @Failure      400  {object}  response.Response
// @Router       /api/organizations/{id}/documents [get]
func (h *OrganizationHandler) GetDocumentsByOrganization(c *gin.Context) {
	docs, err := h.documentService.ListDocumentsByOrganization(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, docs))
}

// GetInvoicesByOrganization returns the organization's invoices
// @Summary      List invoices by organization
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "Organization ID"
// @Success      200  {object}  response.Response{data=[]model.Invoice}
// @Failure      400  {object}  response.Response
// @Router       /api/organizations/{id}/invoices [get]
func (h *OrganizationHandler) GetInvoicesByOrganization(c *gin.Context) {
	invoices, err := h.invoiceService.ListInvoicesByOrganization(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, invoices))
}
