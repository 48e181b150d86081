package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/sos_alert_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
)

// RateLimits - middleware ограничения частоты; nil означает "без ограничения"
type RateLimits struct {
	General gin.HandlerFunc
	Auth    gin.HandlerFunc
}

// NewRateLimits строит общий лимит и более строгий лимит для входа и сброса пароля.
// Оба лимита используют одно хранилище, ключи разделены префиксом.
func NewRateLimits(store limiter.Store, cfg *config.Config, log *logrus.Logger) (RateLimits, error) {
	general, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return RateLimits{}, fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
	}
	auth := limiter.Rate{Period: cfg.AuthRateWindow, Limit: cfg.AuthRateLimit}

	return RateLimits{
		General: newLimitMiddleware(limiter.New(store, general), "ip:", log),
		Auth:    newLimitMiddleware(limiter.New(store, auth), "auth:", log),
	}, nil
}

func newLimitMiddleware(l *limiter.Limiter, keyPrefix string, log *logrus.Logger) gin.HandlerFunc {
	return mgin.NewMiddleware(l,
		mgin.WithKeyGetter(func(c *gin.Context) string {
			return keyPrefix + c.ClientIP()
		}),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			log.WithFields(logrus.Fields{
				"path":      c.FullPath(),
				"client_ip": c.ClientIP(),
			}).Warn("Rate limit reached")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "too many requests, please try again later"})
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// при ошибке хранилища запрос пропускается
			log.WithError(err).Error("Rate limiter store failure")
			c.Next()
		}),
	)
}
