package v1

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/shenikar/sos_alert_system/internal/metrics"
	"github.com/sirupsen/logrus"
)

// APIKeyAuthMiddleware пропускает запрос только с ключом из API_KEYS
// (X-API-Key или Authorization: Bearer)
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	keys := make([][]byte, 0, len(cfg.APIKeys))
	for _, key := range cfg.APIKeys {
		if key != "" {
			keys = append(keys, []byte(key))
		}
	}

	reject := func(c *gin.Context, reason, message string) {
		metrics.APIKeyRejectionsTotal.WithLabelValues(reason).Inc()
		log.WithFields(logrus.Fields{
			"path":   c.FullPath(),
			"reason": reason,
		}).Warn("admin request rejected")
		c.AbortWithStatusJSON(http.StatusUnauthorized, MessageResponse{Message: message})
	}

	return func(c *gin.Context) {
		presented := apiKeyFromRequest(c)
		if presented == "" {
			reject(c, "missing", "API key required")
			return
		}
		if !validAPIKey(keys, []byte(presented)) {
			reject(c, "invalid", "invalid API key")
			return
		}
		c.Next()
	}
}

func apiKeyFromRequest(c *gin.Context) string {
	if key := c.GetHeader("X-API-Key"); key != "" {
		return key
	}
	scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// validAPIKey сравнивает со всеми ключами за постоянное время
func validAPIKey(keys [][]byte, presented []byte) bool {
	match := 0
	for _, key := range keys {
		match |= subtle.ConstantTimeCompare(key, presented)
	}
	return match == 1
}

// MetricsMiddleware считает запросы и их длительность по шаблону маршрута
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
