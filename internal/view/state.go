package view

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"recruit-console/internal/pkg/logger"
)

// Section identifies one console view. Exactly one is active at a time.
type Section string

const (
	SectionAuth         Section = "auth"
	SectionDashboard    Section = "dashboard"
	SectionJobs         Section = "jobs"
	SectionApplicants   Section = "applicants"
	SectionInterviews   Section = "interviews"
	SectionOffers       Section = "offers"
	SectionApplications Section = "applications"
	SectionMatching     Section = "matching"
)

var (
	// ErrNotAuthenticated: only the auth section is reachable while
	// logged out.
	ErrNotAuthenticated = errors.New("view: authentication required")

	// ErrStale marks a load that finished after a newer navigation
	// superseded it; its result must be discarded, not rendered.
	ErrStale = errors.New("view: stale load discarded")
)

// Loader produces the section's view model. Entering a section triggers
// exactly one loader; every entry refetches, nothing is cached.
type Loader func(ctx context.Context) (interface{}, error)

// Gate reports whether a session is established. Session presence gates
// the whole section set except auth.
type Gate interface {
	LoggedIn() bool
}

// Manager is the navigation state machine. Sections without a registered
// loader are treated like missing markup: navigating to them is a silent
// no-op.
type Manager struct {
	mu      sync.Mutex
	active  Section
	loaders map[Section]Loader

	// generation stamps each navigation so a response landing after the
	// user moved on is dropped instead of rendered.
	generation atomic.Uint64

	gate   Gate
	logger logger.ILogger
}

func NewManager(gate Gate, log logger.ILogger) *Manager {
	return &Manager{
		active:  SectionAuth,
		loaders: make(map[Section]Loader),
		gate:    gate,
		logger:  log,
	}
}

func (m *Manager) Register(section Section, loader Loader) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loaders[section] = loader
}

func (m *Manager) Active() Section {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Navigate activates a section and runs its loader. The returned view
// model is published wholesale; the caller replaces whatever was
// rendered before.
func (m *Manager) Navigate(ctx context.Context, section Section) (interface{}, error) {
	if section != SectionAuth && !m.gate.LoggedIn() {
		return nil, ErrNotAuthenticated
	}

	m.mu.Lock()
	loader, known := m.loaders[section]
	if !known && section != SectionAuth {
		m.mu.Unlock()
		m.logger.Debug("View", "Ignoring navigation to unknown section", map[string]interface{}{
			"section": string(section),
		})
		return nil, nil
	}
	m.active = section
	m.mu.Unlock()

	gen := m.generation.Add(1)
	m.logger.Debug("View", "Section entered", map[string]interface{}{
		"section":    string(section),
		"generation": gen,
	})

	if loader == nil {
		return nil, nil
	}

	model, err := loader(ctx)
	if err != nil {
		return nil, err
	}
	if m.generation.Load() != gen {
		return nil, ErrStale
	}
	return model, nil
}

// Reset returns to the unauthenticated view. Called on logout and on the
// centralized auth-failure path.
func (m *Manager) Reset() {
	m.mu.Lock()
	m.active = SectionAuth
	m.mu.Unlock()
	m.generation.Add(1)
	m.logger.Info("View", "Returned to auth view", nil)
}

// EnterLoggedIn moves straight to the dashboard without running its
// loader; the caller issues the dashboard load on first render.
func (m *Manager) EnterLoggedIn() {
	m.mu.Lock()
	m.active = SectionDashboard
	m.mu.Unlock()
	m.generation.Add(1)
}
