package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/kids-in-business/kib_api/services"
	"github.com/kids-in-business/kib_api/shared"
)

type rateLimitConfig struct {
	MaxRequests int
	WindowSize  time.Duration
}

// RateLimitMiddleware counts requests per identifier in Redis with a
// fixed window (INCR + EXPIRE on first hit).
type RateLimitMiddleware struct {
	context.DefaultService

	configs  map[string]rateLimitConfig
	redisSvc *services.RedisService
}

const RATE_LIMIT_MIDDLEWARE_SVC = "rate_limit"

func (svc RateLimitMiddleware) Id() string {
	return RATE_LIMIT_MIDDLEWARE_SVC
}

func (svc *RateLimitMiddleware) Configure(ctx *context.Context) error {
	svc.redisSvc = ctx.Service(services.REDIS_SVC).(*services.RedisService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitMiddleware) Start() error {
	svc.configs = map[string]rateLimitConfig{
		// Login and registration - slow down credential stuffing
		"auth": {
			MaxRequests: 10,
			WindowSize:  time.Minute * 15,
		},

		// Completion toggles - no rapid fire marking
		"toggle": {
			MaxRequests: 60,
			WindowSize:  time.Minute,
		},

		// General API calls per client
		"api_general": {
			MaxRequests: 1000,
			WindowSize:  time.Hour,
		},
	}
	return nil
}

func (svc *RateLimitMiddleware) isAllowed(c *fiber.Ctx, identifier, endpointType string) (bool, int, error) {
	config, exists := svc.configs[endpointType]
	if !exists {
		return true, -1, nil
	}

	key := fmt.Sprintf("ratelimit:%s:%s", endpointType, identifier)
	count, err := svc.redisSvc.Increment(c.Context(), key)
	if err != nil {
		return false, 0, err
	}
	if count == 1 {
		if err := svc.redisSvc.Expire(c.Context(), key, config.WindowSize); err != nil {
			return false, 0, err
		}
	}

	remaining := config.MaxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return count <= int64(config.MaxRequests), remaining, nil
}

func (svc *RateLimitMiddleware) limit(endpointType, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, remaining, err := svc.isAllowed(c, clientIP(c), endpointType)
		if err != nil {
			log.Printf("Rate limit check error for %s: %v", endpointType, err)
			return c.Next()
		}

		if remaining >= 0 {
			c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		}

		if !allowed {
			return shared.ResponseJSON(c, http.StatusTooManyRequests, "Rate limit exceeded", message)
		}
		return c.Next()
	}
}

func (svc *RateLimitMiddleware) AuthRateLimit() fiber.Handler {
	return svc.limit("auth", "Too many authentication attempts. Please try again later.")
}

func (svc *RateLimitMiddleware) ToggleRateLimit() fiber.Handler {
	return svc.limit("toggle", "Too many completion changes. Please slow down.")
}

func (svc *RateLimitMiddleware) IPRateLimit() fiber.Handler {
	return svc.limit("api_general", "Too many requests from this IP address")
}

func clientIP(c *fiber.Ctx) string {
	forwarded := c.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	realIP := c.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	return c.IP()
}
