package driver

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
	jwt "github.com/golang-jwt/jwt/v5"
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

	if err := db.AutoMigrate(&Driver{}, &logs.SystemLog{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func setJWTSecret(t *testing.T, secret string) {
	t.Helper()
	_ = os.Setenv("JWT_SECRET", secret)
	t.Cleanup(func() { _ = os.Unsetenv("JWT_SECRET") })
}

func authCookie(t *testing.T, secret string, userID int) *http.Cookie {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return &http.Cookie{Name: "access_token", Value: signed}
}

func setupDriverRouter(svc DriverServiceAPI, ls LogServicePort) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, svc, ls)
	return r
}

func doJSON(r http.Handler, method, path string, body []byte, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
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

type mockDriverService struct {
	ListFn       func(instituteID, search string) ([]Driver, error)
	GetFn        func(id string) (*Driver, error)
	CreateFn     func(d Driver) (*Driver, error)
	CreateBulkFn func(instituteID, raw string, userID int) ([]Driver, error)
	UpdateFn     func(id string, input UpdateDriverInput) (*Driver, error)
	DeleteFn     func(id string) error
}

func (m *mockDriverService) List(instituteID, search string) ([]Driver, error) {
	if m.ListFn == nil {
		return nil, errors.New("List not implemented")
	}
	return m.ListFn(instituteID, search)
}

func (m *mockDriverService) Get(id string) (*Driver, error) {
	if m.GetFn == nil {
		return nil, errors.New("Get not implemented")
	}
	return m.GetFn(id)
}

func (m *mockDriverService) Create(d Driver) (*Driver, error) {
	if m.CreateFn == nil {
		return nil, errors.New("Create not implemented")
	}
	return m.CreateFn(d)
}

func (m *mockDriverService) CreateBulk(instituteID, raw string, userID int) ([]Driver, error) {
	if m.CreateBulkFn == nil {
		return nil, errors.New("CreateBulk not implemented")
	}
	return m.CreateBulkFn(instituteID, raw, userID)
}

func (m *mockDriverService) Update(id string, input UpdateDriverInput) (*Driver, error) {
	if m.UpdateFn == nil {
		return nil, errors.New("Update not implemented")
	}
	return m.UpdateFn(id, input)
}

func (m *mockDriverService) Delete(id string) error {
	if m.DeleteFn == nil {
		return errors.New("Delete not implemented")
	}
	return m.DeleteFn(id)
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
