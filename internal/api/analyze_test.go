package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	group := router.Group("/v1/analyze")
	if err := RegisterAnalyzeApi(group, Config{Port: "3100", SelfTLS: true}); err != nil {
		t.Fatalf("Should not fail registering API: %s", err)
	}
	return router
}

func TestAnalyzePassword(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze/password", strings.NewReader(`{"password":"password"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Should answer 200, have %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Report struct {
			PasswordLength          int    `json:"password_length"`
			ContainsCommonSubstring bool   `json:"contains_common_substring"`
			Category                string `json:"category"`
		} `json:"report"`
		Reference *struct {
			Score int `json:"score"`
		} `json:"reference"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Should not fail decoding response: %s", err)
	}

	if resp.Report.PasswordLength != 8 {
		t.Errorf("Length should be 8, have %d", resp.Report.PasswordLength)
	}
	if !resp.Report.ContainsCommonSubstring {
		t.Errorf("Should flag the common password")
	}
	if resp.Report.Category != "Very Weak" {
		t.Errorf("Category should be Very Weak, have %q", resp.Report.Category)
	}
	if resp.Reference == nil {
		t.Errorf("Should include the zxcvbn reference block")
	}
}

func TestAnalyzePasswordBadRequest(t *testing.T) {
	router := testRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze/password", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Should answer 400 on a missing password, have %d", rec.Code)
	}
}
