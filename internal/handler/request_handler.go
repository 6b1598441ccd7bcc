package handler

import (
	"net/http"

	"clientportal/internal/service"
	"clientportal/pkg/response"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestService service.RequestService
	taskService    service.TaskService
}

func NewRequestHandler(requestService service.RequestService, taskService service.TaskService) *RequestHandler {
	return &RequestHandler{requestService: requestService, taskService: taskService}
}

// RegisterRoutes binds the request endpoints to the router group
func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	requests := router.Group("/api/requests")
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.ListRequests)
		requests.PATCH("/:id", h.UpdateRequest)
		requests.GET("/:id/tasks", h.GetTasksByRequest)
	}
}

// CreateRequest creates a service request under an organization
// @Summary      Create request
// @Description  Creates a request in Open status after verifying the organization exists
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateRequestInput  true  "Create Request Payload"
// @Success      201      {object}  response.Response{data=model.Request}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var input service.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	request, err := h.requestService.CreateRequest(c.Request.Context(), input)
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, request))
}

// ListRequests returns every service request
// @Summary      List requests
// @Tags         requests
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.Request}
// @Router       /api/requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	requests, err := h.requestService.ListRequests(c.Request.Context())
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, requests))
}

// UpdateRequest applies a partial update to a request
// @Summary      Update request
// @Description  Applies only the provided fields; any status value is accepted
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Request ID"
// @Param        payload  body      service.UpdateRequestInput  true  "Update Request Payload"
// @Success      200      {object}  response.Response{data=model.Request}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/requests/{id} [patch]
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	var input service.UpdateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	request, err := h.requestService.UpdateRequest(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, request))
}

// GetTasksByRequest returns the request's tasks
// @Summary      List tasks by request
// @Tags         tasks
// @Produce      json
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.Response{data=[]model.Task}
// @Failure      400  {object}  response.Response
// @Router       /api/requests/{id}/tasks [get]
func (h *RequestHandler) GetTasksByRequest(c *gin.Context) {
	tasks, err := h.taskService.ListTasksByRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, tasks))
}
