package logs

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
)

func setupLogRouter(t *testing.T, svc *LogService) *gin.Engine {
	t.Helper()
	_ = os.Setenv("JWT_SECRET", "test-secret")
	t.Cleanup(func() { _ = os.Unsetenv("JWT_SECRET") })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, svc)
	return r
}

func logsAuthCookie(t *testing.T) *http.Cookie {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return &http.Cookie{Name: "access_token", Value: signed}
}

func postLogs(r http.Handler, body []byte, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/logs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestGetLogs_RequiresAuth(t *testing.T) {
	svc := &LogService{DB: newTestDB(t)}
	r := setupLogRouter(t, svc)

	w := postLogs(r, []byte(`{}`))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestGetLogs_ReturnsPagedEnvelope(t *testing.T) {
	svc := &LogService{DB: newTestDB(t)}
	seedLog(t, svc, SystemLog{Level: "INFO", Service: "driver", Action: "CREATE", Message: "a"})
	seedLog(t, svc, SystemLog{Level: "INFO", Service: "auth", Action: "LOGIN", Message: "b"})

	r := setupLogRouter(t, svc)

	w := postLogs(r, []byte(`{"service":"driver"}`), logsAuthCookie(t))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data       []SystemLog `json:"data"`
		Page       int         `json:"page"`
		PageSize   int         `json:"page_size"`
		Total      int64       `json:"total"`
		TotalPages int         `json:"total_pages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Total != 1 || len(resp.Data) != 1 {
		t.Errorf("total = %d data = %d, want 1/1", resp.Total, len(resp.Data))
	}
	if resp.Page != 1 || resp.PageSize != 20 {
		t.Errorf("page/page_size = %d/%d, want defaults 1/20", resp.Page, resp.PageSize)
	}
}

func TestGetLogs_InvalidBody(t *testing.T) {
	svc := &LogService{DB: newTestDB(t)}
	r := setupLogRouter(t, svc)

	w := postLogs(r, []byte(`{not json`), logsAuthCookie(t))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
