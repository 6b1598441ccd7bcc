package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clientportal/internal/model"
	"clientportal/internal/service"
	"clientportal/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserService struct {
	user    *model.User
	users   []model.User
	err     error
	created *service.CreateUserRequest
}

func (s *stubUserService) CreateUser(_ context.Context, req service.CreateUserRequest) (*model.User, error) {
	s.created = &req
	if s.err != nil {
		return nil, s.err
	}
	return &model.User{ID: uuid.New(), Email: req.Email, Name: req.Name, Role: req.Role}, nil
}

func (s *stubUserService) GetUserByID(_ context.Context, _ string) (*model.User, error) {
	return s.user, s.err
}

func (s *stubUserService) ListUsers(_ context.Context) ([]model.User, error) {
	return s.users, s.err
}

type stubChatService struct {
	entries []model.ChatHistory
	err     error
}

func (s *stubChatService) CreateChatHistory(_ context.Context, _ service.CreateChatHistoryInput) (*model.ChatHistory, error) {
	return nil, s.err
}

func (s *stubChatService) Ask(_ context.Context, _ service.AskInput) (*model.ChatHistory, error) {
	return nil, s.err
}

func (s *stubChatService) ListChatHistoryByUser(_ context.Context, _ string) ([]model.ChatHistory, error) {
	return s.entries, s.err
}

func newUserRouter(userSvc service.UserService, chatSvc service.ChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewUserHandler(userSvc, chatSvc).RegisterRoutes(router.Group(""))
	return router
}

func TestCreateUserHandlerRejectsBadPayload(t *testing.T) {
	router := newUserRouter(&stubUserService{}, &stubChatService{})

	cases := []string{
		`{}`,
		`{"email": "not-an-email", "name": "X", "role": "Guest"}`,
		`{"email": "a@b.c", "name": "X", "role": "Superuser"}`,
	}
	for _, body := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		require.Contains(t, w.Body.String(), "Invalid request payload")
	}
}

func TestCreateUserHandlerSuccess(t *testing.T) {
	svc := &stubUserService{}
	router := newUserRouter(svc, &stubChatService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"email": "sami@acme.tn", "name": "Sami", "role": "Client-Admin"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.created)
	require.Equal(t, model.RoleClientAdmin, svc.created.Role)
	require.Contains(t, w.Body.String(), `"status":"success"`)
}

func TestCreateUserHandlerDuplicateMapsToConflict(t *testing.T) {
	// Duplicate email from the service surfaces as 409
	dup := &stubUserService{err: apperr.FromStore(gorm.ErrDuplicatedKey, "user")}
	router := newUserRouter(dup, &stubChatService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"email": "dup@acme.tn", "name": "Dup", "role": "Client-User"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), `"status":"error"`)
}

func TestGetUserHandlerAbsentIs404(t *testing.T) {
	// (nil, nil) from the service renders as a 404 envelope
	router := newUserRouter(&stubUserService{}, &stubChatService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "user not found")
}

func TestGetUserHandlerInvalidIDIs400(t *testing.T) {
	router := newUserRouter(&stubUserService{err: apperr.Validationf(`invalid user id "abc"`)}, &stubChatService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/abc", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetChatHistoryHandler(t *testing.T) {
	userID := uuid.New()
	chatSvc := &stubChatService{entries: []model.ChatHistory{
		{ID: uuid.New(), UserID: userID, Query: "third"},
		{ID: uuid.New(), UserID: userID, Query: "second"},
	}}
	router := newUserRouter(&stubUserService{}, chatSvc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID.String()+"/chat-history", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "third")
}
