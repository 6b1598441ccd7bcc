package handler

import (
	"net/http"

	"clientportal/internal/service"
	"clientportal/pkg/response"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	documentService service.DocumentService
}

func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// RegisterRoutes binds the document endpoints to the router group
func (h *DocumentHandler) RegisterRoutes(router *gin.RouterGroup) {
	docs := router.Group("/api/documents")
	{
		docs.POST("", h.CreateDocument)
	}
}

// CreateDocument records metadata for an uploaded file
// @Summary      Create document
// @Description  Records a document's metadata; the file bytes live behind file_url
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateDocumentInput  true  "Create Document Payload"
// @Success      201      {object}  response.Response{data=model.Document}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var input service.CreateDocumentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), input)
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, doc))
}
