package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"bookorbit-backend-go/internal/middleware"
	"bookorbit-backend-go/internal/models"
)

// Stub services for handler tests: canned results, recorded arguments.

type stubUserService struct {
	user *models.User
	role string
	err  error
}

func (s *stubUserService) UpsertUser(_ context.Context, req models.UpsertUserRequest) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.user != nil {
		return s.user, nil
	}
	return &models.User{Email: req.Email, Name: req.Name, Role: models.RoleUser}, nil
}

func (s *stubUserService) GetRole(_ context.Context, _ string) (string, error) {
	return s.role, s.err
}

type stubBookService struct {
	books       []*models.Book
	book        *models.Book
	createdID   string
	err         error
	lastCaller  string
	lastPatch   map[string]interface{}
	lastFilter  string
	deleteCalls int
}

func (s *stubBookService) CreateBook(_ context.Context, callerEmail string, _ models.CreateBookRequest) (string, error) {
	s.lastCaller = callerEmail
	return s.createdID, s.err
}

func (s *stubBookService) ListBooks(_ context.Context, statusFilter string) ([]*models.Book, error) {
	s.lastFilter = statusFilter
	return s.books, s.err
}

func (s *stubBookService) ListMine(_ context.Context, callerEmail string) ([]*models.Book, error) {
	s.lastCaller = callerEmail
	return s.books, s.err
}

func (s *stubBookService) GetBook(_ context.Context, _ string) (*models.Book, error) {
	return s.book, s.err
}

func (s *stubBookService) UpdateBook(_ context.Context, callerEmail, _ string, patch map[string]interface{}) error {
	s.lastCaller = callerEmail
	s.lastPatch = patch
	return s.err
}

func (s *stubBookService) DeleteBook(_ context.Context, callerEmail, _ string) error {
	s.lastCaller = callerEmail
	s.deleteCalls++
	return s.err
}

type stubOrderService struct {
	orders      []map[string]interface{}
	createdID   string
	err         error
	lastCaller  string
	lastPayload map[string]interface{}
}

func (s *stubOrderService) CreateOrder(_ context.Context, callerEmail string, payload map[string]interface{}) (string, error) {
	s.lastCaller = callerEmail
	s.lastPayload = payload
	return s.createdID, s.err
}

func (s *stubOrderService) ListMine(_ context.Context, callerEmail string) ([]map[string]interface{}, error) {
	s.lastCaller = callerEmail
	return s.orders, s.err
}

func (s *stubOrderService) CancelOrder(_ context.Context, callerEmail, _ string) error {
	s.lastCaller = callerEmail
	return s.err
}

// asCaller simulates the auth middleware for routes under test.
func asCaller(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserEmail, email)
		c.Next()
	}
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

func init() {
	gin.SetMode(gin.TestMode)
}
