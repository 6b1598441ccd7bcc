package handler

import (
	"net/http"

	"clientportal/internal/service"
	"clientportal/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
	chatService service.ChatService
}

func NewUserHandler(userService service.UserService, chatService service.ChatService) *UserHandler {
	return &UserHandler{userService: userService, chatService: chatService}
}

// RegisterRoutes binds the user endpoints to the router group
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/api/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUserByID)
		users.GET("/:id/chat-history", h.GetChatHistoryByUser)
	}
}

// CreateUser creates a new portal user
// @Summary      Create user
// @Description  Creates a new user with a unique email and a fixed role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateUserRequest  true  "Create User Payload"
// @Success      201      {object}  response.Response{data=model.User}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, user))
}

// ListUsers returns every user
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.User}
// @Failure      500  {object}  response.Response
// @Router       /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, users))
}

// GetUserByID returns one user, or an explicit not-found result for an absent id
// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=model.User}
// @Failure      404  {object}  response.Response
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "user not found"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}

// GetChatHistoryByUser returns the user's assistant exchanges, most recent first
// @Summary      Get chat history by user
// @Description  Returns the user's chat history ordered by descending timestamp
// @Tags         chat
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=[]model.ChatHistory}
// @Failure      400  {object}  response.Response
// @Router       /api/users/{id}/chat-history [get]
func (h *UserHandler) GetChatHistoryByUser(c *gin.Context) {
	entries, err := h.chatService.ListChatHistoryByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, entries))
}
