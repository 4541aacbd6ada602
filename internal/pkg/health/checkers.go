package health

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/piresc/cabdispatch/internal/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Checker checks one dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// Pinger is satisfied by the redis and postgres clients
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingChecker checks a dependency by pinging it
func PingChecker(p Pinger) Checker {
	return CheckerFunc(p.Ping)
}

// ConnChecker checks a connection-state predicate such as the NATS client's IsConnected
func ConnChecker(name string, connected func() bool) Checker {
	return CheckerFunc(func(context.Context) error {
		if !connected() {
			return errors.New(name + " not connected")
		}
		return nil
	})
}

// Report is the readiness response
type Report struct {
	Status       string                `json:"status"`
	Service      string                `json:"service,omitempty"`
	Timestamp    time.Time             `json:"timestamp"`
	Dependencies map[string]Dependency `json:"dependencies"`
}

// Dependency is the state of one checked dependency
type Dependency struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Service runs the registered checkers
type Service struct {
	checkers map[string]Checker
	timeout  time.Duration
}

// NewService creates a health service whose checks are bounded by timeout
func NewService(timeout time.Duration) *Service {
	return &Service{checkers: make(map[string]Checker), timeout: timeout}
}

// AddChecker registers a checker under a dependency name. Not safe after serving starts.
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Names lists the registered dependencies in order
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check runs every checker and aggregates the result
func (s *Service) Check(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	report := Report{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]Dependency, len(s.checkers)),
	}

	for _, name := range s.Names() {
		if err := s.checkers[name].CheckHealth(ctx); err != nil {
			logger.Warn("Health check failed", logger.String("dependency", name), logger.Err(err))
			report.Dependencies[name] = Dependency{Status: StatusUnhealthy, Error: err.Error()}
			report.Status = StatusUnhealthy
			continue
		}
		report.Dependencies[name] = Dependency{Status: StatusHealthy}
	}

	return report
}
