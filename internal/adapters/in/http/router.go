package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// RouterConfig tunes the echo instance.
type RouterConfig struct {
	// RateLimit is the sustained number of requests per second per caller.
	// Zero disables rate limiting.
	RateLimit float64
	Burst     int
	Debug     bool
}

// RequestRecorder counts served requests.
type RequestRecorder interface {
	RecordRequest(route string, code int)
}

// NewRouter builds the echo instance serving s. gatherer backs /metrics and
// recorder may be nil.
func NewRouter(
	cfg RouterConfig,
	s *Server,
	gatherer prometheus.Gatherer,
	recorder RequestRecorder,
	logger *slog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Debug
	e.Validator = newRequestValidator()
	if cfg.Debug {
		e.Logger.SetLevel(log.DEBUG)
	} else {
		e.Logger.SetLevel(log.WARN)
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger))
	if recorder != nil {
		e.Use(recordRequests(recorder))
	}
	if cfg.RateLimit > 0 {
		e.Use(middleware.RateLimiterWithConfig(rateLimiterConfig(cfg)))
	}

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	s.Register(e)

	return e
}

// rateLimiterConfig limits each caller separately, falling back to the
// client address for anonymous requests.
func rateLimiterConfig(cfg RouterConfig) middleware.RateLimiterConfig {
	burst := cfg.Burst
	if burst <= 0 {
		burst = int(cfg.RateLimit) + 1
	}

	return middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health" || c.Path() == "/metrics"
		},
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RateLimit),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if id := c.Request().Header.Get(CallerHeader); id != "" {
				return "caller:" + id, nil
			}
			return "ip:" + c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, Error{Code: http.StatusForbidden, Message: err.Error()})
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return c.JSON(http.StatusTooManyRequests, Error{
				Code:    http.StatusTooManyRequests,
				Message: http.StatusText(http.StatusTooManyRequests),
			})
		},
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
				slog.String("caller", c.Request().Header.Get(CallerHeader)),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				logger.LogAttrs(c.Request().Context(), slog.LevelError, "request", attrs...)
				return nil
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	})
}

func recordRequests(recorder RequestRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}
			recorder.RecordRequest(c.Path(), status)
			return err
		}
	}
}
