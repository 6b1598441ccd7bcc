package handler

import (
	"net/http"

	"clientportal/internal/middleware"
	"clientportal/internal/model"
	"clientportal/internal/service"
	"clientportal/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
	jwtSecret   []byte
}

func NewAuthHandler(authService service.AuthService, userService service.UserService, jwtSecret []byte) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService, jwtSecret: jwtSecret}
}

// RegisterRoutes binds the auth endpoints to the router group
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.RequireRole(h.jwtSecret,
			model.RoleGuest, model.RoleClientUser, model.RoleClientAdmin,
			model.RoleFirmAccountant, model.RoleSystemAdmin), h.Me)
	}
}

// Register creates a user with credentials sign-in
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RegisterInput  true  "Register Payload"
// @Success      201      {object}  response.Response{data=model.User}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, user))
}

// Login verifies credentials and issues an access token
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginInput  true  "Login Payload"
// @Success      200      {object}  response.Response{data=service.TokenResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	token, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		c.JSON(response.FromError(err))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, token))
}

// Me returns the authenticated caller's user record
// @Summary      Current user
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=model.User}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
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
