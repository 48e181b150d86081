package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestAPIKeyFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "x-api-key", headers: map[string]string{"X-API-Key": "k1"}, want: "k1"},
		{name: "bearer", headers: map[string]string{"Authorization": "Bearer k2"}, want: "k2"},
		{name: "bearer lower case", headers: map[string]string{"Authorization": "bearer k3"}, want: "k3"},
		{name: "x-api-key wins", headers: map[string]string{"X-API-Key": "k1", "Authorization": "Bearer k2"}, want: "k1"},
		{name: "basic scheme", headers: map[string]string{"Authorization": "Basic k4"}, want: ""},
		{name: "none", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, apiKeyFromRequest(c))
		})
	}
}

func TestValidAPIKey(t *testing.T) {
	keys := [][]byte{[]byte("first"), []byte("second")}

	assert.True(t, validAPIKey(keys, []byte("first")))
	assert.True(t, validAPIKey(keys, []byte("second")))
	assert.False(t, validAPIKey(keys, []byte("third")))
	assert.False(t, validAPIKey(nil, []byte("first")))
}

func TestAPIKeyAuthMiddleware_EmptyConfiguredKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{APIKeys: []string{""}}
	router := gin.New()
	router.GET("/admin", APIKeyAuthMiddleware(cfg, logrus.New()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, http.MethodGet, "/admin", nil, map[string]string{"Authorization": "Bearer "})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "API key required", decodeMessage(t, w).Message)
}
