package institute

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"rideinfo-api/internal/driver"
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

	if err := db.AutoMigrate(&Institute{}, &driver.Driver{}, &logs.SystemLog{}); err != nil {
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

func setupInstituteRouter(svc InstituteServiceAPI, ls LogServicePort) *gin.Engine {
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

type mockInstituteService struct {
	ListFn   func(search string) ([]Institute, error)
	GetFn    func(id string) (*Institute, error)
	CreateFn func(inst Institute) (*Institute, error)
	UpdateFn func(id string, input UpdateInstituteInput) (*Institute, error)
	DeleteFn func(id string) error
}

func (m *mockInstituteService) List(search string) ([]Institute, error) {
	if m.ListFn == nil {
		return nil, errors.New("List not implemented")
	}
	return m.ListFn(search)
}

func (m *mockInstituteService) Get(id string) (*Institute, error) {
	if m.GetFn == nil {
		return nil, errors.New("Get not implemented")
	}
	return m.GetFn(id)
}

func (m *mockInstituteService) Create(inst Institute) (*Institute, error) {
	if m.CreateFn == nil {
		return nil, errors.New("Create not implemented")
	}
	return m.CreateFn(inst)
}

func (m *mockInstituteService) Update(id string, input UpdateInstituteInput) (*Institute, error) {
	if m.UpdateFn == nil {
		return nil, errors.New("Update not implemented")
	}
	return m.UpdateFn(id, input)
}

func (m *mockInstituteService) Delete(id string) error {
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
