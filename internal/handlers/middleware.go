package handlers

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Ricozl/commerce/internal/auth"
	"github.com/Ricozl/commerce/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestIDMiddleware reuses the caller's X-Request-ID or assigns a new one
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Request = c.Request.WithContext(utils.WithRequestID(c.Request.Context(), id))
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the id assigned by RequestIDMiddleware
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	fields := map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": RequestID(c),
	}
	if identity, ok := auth.CurrentIdentity(c); ok {
		fields["user_id"] = identity.UserID
	}
	utils.Info("HTTP Request", fields)
}

// ActionLimiter throttles state-changing actions per signed-in user
type ActionLimiter struct {
	mu        sync.Mutex
	limiters  map[uint]*userLimiter
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type userLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewActionLimiter allows perSecond actions per user with the given burst
func NewActionLimiter(perSecond float64, burst int) *ActionLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ActionLimiter{
		limiters: make(map[uint]*userLimiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		idleTTL:  10 * time.Minute,
		now:      time.Now,
	}
}

// Allow reports whether the user may act now
func (l *ActionLimiter) Allow(userID uint) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}

	ul, ok := l.limiters[userID]
	if !ok {
		ul = &userLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[userID] = ul
	}
	ul.lastSeen = now
	return ul.limiter.AllowN(now, 1)
}

// sweep forgets users idle for longer than idleTTL. Runs at most once per idleTTL.
func (l *ActionLimiter) sweep(now time.Time) {
	for id, ul := range l.limiters {
		if now.Sub(ul.lastSeen) > l.idleTTL {
			delete(l.limiters, id)
		}
	}
	l.lastSweep = now
}

// Middleware rejects over-limit requests with 429. It must run after AuthMiddleware.
func (l *ActionLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := auth.CurrentIdentity(c)
		if !ok {
			c.Next()
			return
		}

		if !l.Allow(identity.UserID) {
			utils.Warn("Action rate limit exceeded", map[string]any{
				"user_id":    identity.UserID,
				"path":       c.Request.URL.Path,
				"request_id": RequestID(c),
			})
			retryAfter := 1
			if l.limit > 0 {
				retryAfter = int(1/float64(l.limit)) + 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, Response{
				Success: false,
				Message: &Message{Level: LevelWarning, Text: "Too many requests. Please slow down."},
			})
			return
		}
		c.Next()
	}
}
