package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/service"
	"github.com/MKhiriev/go-messagely/models"
)

// ---- fn-field service mocks ----

type mockAuthService struct {
	registerFn    func(ctx context.Context, user models.User) (models.User, error)
	loginFn       func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	return m.registerFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "token-" + user.Username, Username: user.Username}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return parseTestToken(tokenString)
}

type mockUserService struct {
	getAllUsersFn func(ctx context.Context) ([]models.UserSummary, error)
	getUserFn     func(ctx context.Context, username string) (models.User, error)
}

func (m *mockUserService) GetAllUsers(ctx context.Context) ([]models.UserSummary, error) {
	return m.getAllUsersFn(ctx)
}

func (m *mockUserService) GetUser(ctx context.Context, username string) (models.User, error) {
	return m.getUserFn(ctx, username)
}

type mockMessageService struct {
	sendMessageFn     func(ctx context.Context, message models.Message) (models.Message, error)
	getMessageFn      func(ctx context.Context, requester string, id int64) (models.Message, error)
	messagesToFn      func(ctx context.Context, username string) ([]models.Message, error)
	messagesFromFn    func(ctx context.Context, username string) ([]models.Message, error)
	markMessageReadFn func(ctx context.Context, requester string, id int64) (models.MessageRead, error)
}

func (m *mockMessageService) SendMessage(ctx context.Context, message models.Message) (models.Message, error) {
	return m.sendMessageFn(ctx, message)
}

func (m *mockMessageService) GetMessage(ctx context.Context, requester string, id int64) (models.Message, error) {
	return m.getMessageFn(ctx, requester, id)
}

func (m *mockMessageService) MessagesTo(ctx context.Context, username string) ([]models.Message, error) {
	return m.messagesToFn(ctx, username)
}

func (m *mockMessageService) MessagesFrom(ctx context.Context, username string) ([]models.Message, error) {
	return m.messagesFromFn(ctx, username)
}

func (m *mockMessageService) MarkMessageRead(ctx context.Context, requester string, id int64) (models.MessageRead, error) {
	return m.markMessageReadFn(ctx, requester, id)
}

// ---- helpers ----

// parseTestToken accepts "token-<username>" strings and rejects anything else,
// standing in for real JWT validation in router-level tests.
func parseTestToken(tokenString string) (models.Token, error) {
	username, ok := strings.CutPrefix(tokenString, "token-")
	if !ok || username == "" {
		return models.Token{}, errors.New("bad test token")
	}
	return models.Token{Username: username, SignedString: tokenString}, nil
}

func newTestHandler(services *service.Services) *Handler {
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	return &Handler{
		logger:   logger.Nop(),
		services: services,
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// performRequest drives a request through the full router, middleware
// included. An empty token leaves the request anonymous.
func performRequest(t *testing.T, h *Handler, method, target, token string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}
