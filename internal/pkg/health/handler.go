package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/xpend/internal/pkg/logger"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// HealthChecker checks one dependency
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// Response is the body of the dependency aware endpoints
type Response struct {
	Status       string            `json:"status"`
	Service      string            `json:"service"`
	Timestamp    time.Time         `json:"timestamp"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// Service runs the registered dependency checks
type Service struct {
	serviceName string
	checkers    map[string]HealthChecker
	timeout     time.Duration
}

// NewService creates a health service for serviceName
func NewService(serviceName string) *Service {
	return &Service{
		serviceName: serviceName,
		checkers:    make(map[string]HealthChecker),
		timeout:     3 * time.Second,
	}
}

// AddChecker registers a dependency check; a nil checker is ignored
func (s *Service) AddChecker(name string, checker HealthChecker) {
	if checker == nil {
		return
	}
	s.checkers[name] = checker
}

// Check runs every checker and reports overall status
func (s *Service) Check(ctx context.Context) (Response, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	response := Response{
		Status:       "healthy",
		Service:      s.serviceName,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]string, len(names)),
	}
	healthy := true
	for _, name := range names {
		if err := s.checkers[name].CheckHealth(ctx); err != nil {
			logger.Warn("Health check failed",
				logger.String("dependency", name),
				logger.ErrorField(err))
			response.Dependencies[name] = "unhealthy: " + err.Error()
			healthy = false
			continue
		}
		response.Dependencies[name] = "healthy"
	}
	if !healthy {
		response.Status = "unhealthy"
	}
	return response, healthy
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName, version string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	if version == "" {
		version = "development"
	}
	gitCommit := os.Getenv("GIT_COMMIT")
	if gitCommit == "" {
		gitCommit = "unknown"
	}

	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     version,
			GitCommit:   gitCommit,
			ServiceName: serviceName,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	}
}

// RegisterHealthEndpoints mounts /ping and /healthz as liveness probes and
// /health and /ready as dependency checks answering 503 on failure
func RegisterHealthEndpoints(e *echo.Echo, version string, service *Service) {
	e.GET("/ping", NewPingHandler(service.serviceName, version))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	check := func(c echo.Context) error {
		response, healthy := service.Check(c.Request().Context())
		if !healthy {
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, response)
	}
	e.GET("/health", check)
	e.GET("/ready", check)
}
