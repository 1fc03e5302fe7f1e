package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-DetailingService/internal/api/handlers"
)

const (
	defaultRateLimit  = 60
	defaultRateWindow = time.Minute

	msgRateLimited        = "слишком много запросов, попробуйте позже"
	msgRateLimiterFailure = "сервис временно недоступен"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// WindowCounter счетчик запросов в фиксированном окне
type WindowCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisCounter счетчик окна на Redis, общий для всех экземпляров сервиса
type RedisCounter struct {
	rdb *redis.Client
}

// NewRedisCounter создает счетчик окна на Redis
func NewRedisCounter(rdb *redis.Client) *RedisCounter {
	return &RedisCounter{rdb: rdb}
}

// Incr атомарно увеличивает счетчик ключа и ставит TTL окна при первом обращении
func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, c.rdb, []string{key}, window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}

// RateLimiter ограничивает число публичных запросов с одного клиента к одной студии
type RateLimiter struct {
	counter WindowCounter
	limit   int
	window  time.Duration
	prefix  string
	// failOpen пропускает запросы, если счетчик недоступен
	failOpen bool
	// trustProxy берет адрес клиента из X-Forwarded-For, который выставляет балансировщик
	trustProxy bool
	logger     Logger
}

// NewRateLimiter создает ограничитель запросов
func NewRateLimiter(counter WindowCounter, limit int, window time.Duration, failOpen, trustProxy bool, logger Logger) *RateLimiter {
	if limit <= 0 {
		limit = defaultRateLimit
	}
	if window <= 0 {
		window = defaultRateWindow
	}
	return &RateLimiter{
		counter:    counter,
		limit:      limit,
		window:     window,
		prefix:     "detailing:rl",
		failOpen:   failOpen,
		trustProxy: trustProxy,
		logger:     logger,
	}
}

// Middleware возвращает mux middleware ограничителя
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rl.key(r)

		count, err := rl.counter.Incr(r.Context(), key, rl.window)
		if err != nil {
			rl.logger.Warn("RateLimiter: counter error for key=%s: %v", key, err)
			if rl.failOpen {
				next.ServeHTTP(w, r)
				return
			}
			handlers.RespondError(w, http.StatusServiceUnavailable, msgRateLimiterFailure)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		remaining := int64(rl.limit) - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(rl.limit) {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			handlers.RespondTooManyRequests(w, msgRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) key(r *http.Request) string {
	tenant := mux.Vars(r)["tenantKey"]
	return rl.prefix + ":" + tenant + ":" + clientKey(r, rl.trustProxy)
}

// clientKey адрес клиента для счетчика
// За доверенным прокси берется последний адрес X-Forwarded-For: его дописал сам прокси
func clientKey(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			parts := strings.Split(forwarded, ",")
			if ip := strings.TrimSpace(parts[len(parts)-1]); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
