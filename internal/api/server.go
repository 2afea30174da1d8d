package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"racing_analyzer/internal/metrics"
)

// NewServer wires the routes and middleware onto a fresh echo instance.
func NewServer(h *Handler, recorder *metrics.Recorder, corsOrigins []string, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(requestLogger(logger))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))
	e.Use(requestMetrics(recorder))

	e.GET("/", h.Root)
	e.GET("/healthz", h.Health)
	e.GET("/metrics", echo.WrapHandler(recorder.Handler()))

	e.GET("/races", h.ListRaces)
	e.GET("/races/:id", h.GetRace)

	e.GET("/comments", h.ListComments)
	e.POST("/comments", h.CreateComment)
	e.GET("/comments/:id", h.GetComment)
	e.PUT("/comments/:id", h.UpdateComment)
	e.DELETE("/comments/:id", h.DeleteComment)

	e.GET("/feedback", h.ListFeedback)
	e.POST("/feedback", h.CreateFeedback)

	e.GET("/stats", h.ListStats)
	e.GET("/kpi", h.KPI)
	e.GET("/recommendations", h.Recommendations)

	e.POST("/sync", h.TriggerSync)
	e.GET("/sync/runs/:id", h.GetSyncRun)

	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{
				"status", v.Status,
				"method", v.Method,
				"uri", v.URI,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", attrs...)
			case v.Status >= 400:
				logger.Warn("http request", attrs...)
			default:
				logger.Info("http request", attrs...)
			}
			return nil
		},
	})
}

func requestMetrics(recorder *metrics.Recorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			recorder.RecordHTTPRequest(c.Request().Method, route, status, time.Since(start))
			return err
		}
	}
}
