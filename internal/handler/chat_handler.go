package handler

import (
	"net/http"

	"clientportal/internal/service"
	"clientportal/pkg/response"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// RegisterRoutes binds the chat endpoints to the router group
func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	chat := router.Group("/api/chat")
	{
		chat.POST("/history", h.CreateChatHistory)
		chat.POST("/ask", h.Ask)
	}
}

// CreateChatHistory appends a pre-formed exchange to a user's history
// @Summary      Create chat history entry
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateChatHistoryInput  true  "Create Chat History Payload"
// @Success      201      {object}  response.Response{data=model.ChatHistory}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/chat/history [post]
func (h *ChatHandler) CreateChatHistory(c *gin.Context) {
	var input service.CreateChatHistoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	entry, err := h.chatService.CreateChatHistory(c.Request.Context(), input)
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, entry))
}

// Ask runs the canned-answer assistant and persists the exchange
// @Summary      Ask the assistant
// @Description  Maps the query to a fixed response template and appends the exchange to history
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        payload  body      service.AskInput  true  "Ask Payload"
// @Success      201      {object}  response.Response{data=model.ChatHistory}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/chat/ask [post]
func (h *ChatHandler) Ask(c *gin.Context) {
	var input service.AskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	entry, err := h.chatService.Ask(c.Request.Context(), input)
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, entry))
}
