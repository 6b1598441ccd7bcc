package handler

import (
	"net/http"

	"clientportal/internal/service"
	"clientportal/pkg/response"

	"github.com/gin-gonic/gin"
)

type ResourceTemplateHandler struct {
	templateService service.ResourceTemplateService
}

func NewResourceTemplateHandler(templateService service.ResourceTemplateService) *ResourceTemplateHandler {
	return &ResourceTemplateHandler{templateService: templateService}
}

// RegisterRoutes binds the resource template endpoints to the router group
func (h *ResourceTemplateHandler) RegisterRoutes(router *gin.RouterGroup) {
	templates := router.Group("/api/resource-templates")
	{
		templates.POST("", h.CreateResourceTemplate)
		templates.GET("", h.ListResourceTemplates)
	}
}

// CreateResourceTemplate creates a reference-content record
// @Summary      Create resource template
// @Tags         resource-templates
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateResourceTemplateInput  true  "Create Resource Template Payload"
// @Success      201      {object}  response.Response{data=model.ResourceTemplate}
// @Failure      400      {object}  response.Response
// @Router       /api/resource-templates [post]
func (h *ResourceTemplateHandler) CreateResourceTemplate(c *gin.Context) {
	var input service.CreateResourceTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	tpl, err := h.templateService.CreateResourceTemplate(c.Request.Context(), input)
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, tpl))
}

// ListResourceTemplates returns templates, optionally filtered by exact type
// @Summary      List resource templates
// @Description  Returns all templates, or only those matching the type query param exactly
// @Tags         resource-templates
// @Produce      json
// @Param        type  query     string  false  "Filter by type (document_template, calculator)"
// @Success      200   {object}  response.Response{data=[]model.ResourceTemplate}
// @Failure      400   {object}  response.Response
// @Router       /api/resource-templates [get]
func (h *ResourceTemplateHandler) ListResourceTemplates(c *gin.Context) {
	if templateType := c.Query("type"); templateType != "" {
		result, err := h.templateService.ListResourceTemplatesByType(c.Request.Context(), templateType)
		if err != nil {
			c.JSON(response.FromError(err))
			return
		}
		c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
		return
	}

	result, err := h.templateService.ListResourceTemplates(c.Request.Context())
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}
