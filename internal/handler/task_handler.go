package handler

import (
	"net/http"

	"clientportal/internal/service"
	"clientportal/pkg/response"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// RegisterRoutes binds the task endpoints to the router group
func (h *TaskHandler) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/api/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.PATCH("/:id", h.UpdateTask)
	}
}

// CreateTask creates a task under a request
// @Summary      Create task
// @Description  Creates a task in Not Started status under an existing request
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateTaskInput  true  "Create Task Payload"
// @Success      201      {object}  response.Response{data=model.Task}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var input service.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, task))
}

// UpdateTask applies a partial update to a task
// @Summary      Update task
// @Description  Applies only the provided fields; explicit null clears assignee or due date
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Task ID"
// @Param        payload  body      service.UpdateTaskInput  true  "Update Task Payload"
// @Success      200      {object}  response.Response{data=model.Task}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/tasks/{id} [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var input service.UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, task))
}
