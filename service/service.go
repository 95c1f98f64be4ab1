package service

import (
	"fmt"

	"go.uber.org/zap"
)

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: the audio device, the metrics listener
//
// Lifecycle:
//  1. Construction
//  2. Start() - acquire resources, launch background goroutines
//  3. [runtime operation]
//  4. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the identifier used in logs
	Name() string

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// Group starts services in order and stops the started ones in reverse
type Group struct {
	log     *zap.Logger
	started []Service
}

// NewGroup creates an empty group; nil logger discards
func NewGroup(log *zap.Logger) *Group {
	if log == nil {
		log = zap.NewNop()
	}
	return &Group{log: log}
}

// Start starts s and tracks it for Stop
// A failing optional service is logged and skipped; a failing required one returns the error
func (g *Group) Start(s Service, required bool) error {
	if err := s.Start(); err != nil {
		if required {
			return fmt.Errorf("start %s: %w", s.Name(), err)
		}
		g.log.Warn("service unavailable, continuing without it",
			zap.String("service", s.Name()), zap.Error(err))
		return nil
	}
	g.started = append(g.started, s)
	g.log.Debug("service started", zap.String("service", s.Name()))
	return nil
}

// Running reports whether a service with the given name started successfully
func (g *Group) Running(name string) bool {
	for _, s := range g.started {
		if s.Name() == name {
			return true
		}
	}
	return false
}

// Stop stops started services in reverse order, logging failures
func (g *Group) Stop() {
	for i := len(g.started) - 1; i >= 0; i-- {
		s := g.started[i]
		if err := s.Stop(); err != nil {
			g.log.Warn("service stop failed", zap.String("service", s.Name()), zap.Error(err))
		}
	}
	g.started = nil
}
