package router

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/solodko/solodko-api/internal/cache"
	"github.com/solodko/solodko-api/internal/config"
	"github.com/solodko/solodko-api/internal/constants"
	"github.com/solodko/solodko-api/internal/http/response"
	"github.com/solodko/solodko-api/internal/logger"
	"github.com/solodko/solodko-api/internal/service"
)

// RequestID attaches a request identifier, honoring one sent by the client.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderRequestID, requestID)
		c.Next()
	}
}

// Logger logs each request after completion.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
			"request_id", c.GetString(constants.ContextKeyRequestID),
		)
	}
}

// CORS applies the configured allow list.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	allowAll := len(cfg.AllowOrigins) == 0
	allowed := make(map[string]bool, len(cfg.AllowOrigins))
	for _, origin := range cfg.AllowOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if allowAll {
				c.Header("Access-Control-Allow-Origin", "*")
			} else if allowed[origin] {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			}
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches user identity from a bearer token when present. An
// invalid or missing token leaves the request anonymous: order submission
// permits guests.
func OptionalAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := claimsFromRequest(c, auth); claims != nil {
			c.Set(constants.ContextKeyUserID, claims.UserID)
			c.Set(constants.ContextKeyIsAdmin, claims.IsAdmin)
		}
		c.Next()
	}
}

// RequireAdmin rejects requests without a valid admin token.
func RequireAdmin(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFromRequest(c, auth)
		if claims == nil {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}
		if !claims.IsAdmin {
			response.Forbidden(c, "admin access required")
			c.Abort()
			return
		}
		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyIsAdmin, true)
		c.Next()
	}
}

func claimsFromRequest(c *gin.Context, auth *service.AuthService) *service.Claims {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return nil
	}
	claims, err := auth.Verify(token)
	if err != nil {
		return nil
	}
	return claims
}

// OrderRateLimit caps order submissions per client IP per minute using a
// redis counter. With redis unavailable the request passes through.
func OrderRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 || cache.Client == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:orders:%s", c.ClientIP())
		count, err := cache.Incr(c.Request.Context(), key, time.Minute)
		if err != nil {
			logger.Warnw("rate limit check failed", "error", err)
			c.Next()
			return
		}
		if count > int64(limit) {
			response.TooManyRequests(c, "too many order submissions, try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
