package server

import (
	"net/http"
	"time"

	"github.com/berfenger/enpal2mqtt/internal/core/domain"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	if s.httpLog {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.Recover())

	e.GET("/healthcheck", s.HealthCheckHandler)
	e.GET("/snapshot", s.SnapshotHandler)

	return e
}

func (s *Server) HealthCheckHandler(c echo.Context) error {
	res, err := s.rootContext.RequestFuture(s.masterActor, domain.ActorHealthRequest{}, 10*time.Second).Result()
	if err != nil {
		return c.String(http.StatusServiceUnavailable, "health_check: FAIL")
	}
	if response, ok := res.(domain.ActorHealthResponse); ok && response.Healthy {
		return c.String(http.StatusOK, "health_check: OK")
	}
	return c.String(http.StatusServiceUnavailable, "health_check: FAIL")
}

// SnapshotHandler exposes the current cached snapshot as JSON, refreshing it
// first if the TTL expired.
func (s *Server) SnapshotHandler(c echo.Context) error {
	res, err := s.rootContext.RequestFuture(s.masterActor, domain.GetSnapshotRequest{}, 30*time.Second).Result()
	if err != nil {
		return c.String(http.StatusServiceUnavailable, "snapshot: FAIL")
	}
	response, ok := res.(domain.GetSnapshotResponse)
	if !ok || response.HasResponseError() {
		return c.String(http.StatusServiceUnavailable, "snapshot: FAIL")
	}
	return c.JSON(http.StatusOK, response.Snapshot)
}
