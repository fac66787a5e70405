package auth

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"rideinfo-api/internal/logs"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&User{}, &logs.SystemLog{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func setJWTSecret(t *testing.T, secret string) {
	t.Helper()
	_ = os.Setenv("JWT_SECRET", secret)
	t.Cleanup(func() { _ = os.Unsetenv("JWT_SECRET") })
}

func setupAuthRouter(svc AuthServicePort, ls LogServicePort) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, svc, ls)
	return r
}

func postJSON(r http.Handler, path string, body []byte, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}

func getReq(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}

func responseCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

type mockAuthService struct {
	CreateUserFn  func(user User) (*User, error)
	GetUserFn     func(email string) (*User, error)
	GetUserByIDFn func(id int) (*User, error)
}

func (m *mockAuthService) CreateUser(user User) (*User, error) {
	if m.CreateUserFn == nil {
		return nil, errors.New("CreateUser not implemented")
	}
	return m.CreateUserFn(user)
}

func (m *mockAuthService) GetUser(email string) (*User, error) {
	if m.GetUserFn == nil {
		return nil, errors.New("GetUser not implemented")
	}
	return m.GetUserFn(email)
}

func (m *mockAuthService) GetUserByID(id int) (*User, error) {
	if m.GetUserByIDFn == nil {
		return nil, errors.New("GetUserByID not implemented")
	}
	return m.GetUserByIDFn(id)
}

type mockLogService struct {
	LogFn func(entry logs.SystemLog, payload any) error
}

func (m *mockLogService) Log(entry logs.SystemLog, payload any) error {
	if m.LogFn == nil {
		return nil
	}
	return m.LogFn(entry, payload)
}
