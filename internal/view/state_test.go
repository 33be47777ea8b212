package view

import (
	"context"
	"errors"
	"testing"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeGate struct{ loggedIn bool }

func (g *fakeGate) LoggedIn() bool { return g.loggedIn }

func TestNavigateRequiresSession(t *testing.T) {
	gate := &fakeGate{}
	m := NewManager(gate, nopLogger{})
	m.Register(SectionJobs, func(ctx context.Context) (interface{}, error) {
		return "jobs", nil
	})

	for _, section := range []Section{SectionDashboard, SectionJobs, SectionMatching} {
		if _, err := m.Navigate(context.Background(), section); !errors.Is(err, ErrNotAuthenticated) {
			t.Fatalf("section %s reachable while logged out, err=%v", section, err)
		}
	}
	if m.Active() != SectionAuth {
		t.Fatalf("active section moved to %s while logged out", m.Active())
	}

	gate.loggedIn = true
	model, err := m.Navigate(context.Background(), SectionJobs)
	if err != nil {
		t.Fatal(err)
	}
	if model != "jobs" {
		t.Fatalf("got model %v", model)
	}
	if m.Active() != SectionJobs {
		t.Fatalf("active = %s", m.Active())
	}
}

func TestNavigateUnknownSectionIsNoOp(t *testing.T) {
	gate := &fakeGate{loggedIn: true}
	m := NewManager(gate, nopLogger{})
	m.Register(SectionJobs, func(ctx context.Context) (interface{}, error) {
		return "jobs", nil
	})
	if _, err := m.Navigate(context.Background(), SectionJobs); err != nil {
		t.Fatal(err)
	}

	model, err := m.Navigate(context.Background(), Section("reports"))
	if err != nil {
		t.Fatalf("unknown section errored: %v", err)
	}
	if model != nil {
		t.Fatalf("unknown section produced a model: %v", model)
	}
	if m.Active() != SectionJobs {
		t.Fatalf("unknown section changed active view to %s", m.Active())
	}
}

func TestNavigateRunsOneLoaderPerEntry(t *testing.T) {
	gate := &fakeGate{loggedIn: true}
	m := NewManager(gate, nopLogger{})

	var calls int
	m.Register(SectionOffers, func(ctx context.Context) (interface{}, error) {
		calls++
		return calls, nil
	})

	for i := 1; i <= 3; i++ {
		model, err := m.Navigate(context.Background(), SectionOffers)
		if err != nil {
			t.Fatal(err)
		}
		if model != i {
			t.Fatalf("entry %d got model %v, loader not re-run", i, model)
		}
	}
}

func TestNavigateDiscardsStaleLoad(t *testing.T) {
	gate := &fakeGate{loggedIn: true}
	m := NewManager(gate, nopLogger{})

	started := make(chan struct{})
	release := make(chan struct{})
	m.Register(SectionJobs, func(ctx context.Context) (interface{}, error) {
		close(started)
		<-release
		return "slow jobs", nil
	})
	m.Register(SectionOffers, func(ctx context.Context) (interface{}, error) {
		return "offers", nil
	})

	slow := make(chan error, 1)
	go func() {
		_, err := m.Navigate(context.Background(), SectionJobs)
		slow <- err
	}()
	<-started

	// Supersede the in-flight jobs load, then let it finish.
	if _, err := m.Navigate(context.Background(), SectionOffers); err != nil {
		t.Fatal(err)
	}
	close(release)

	if err := <-slow; !errors.Is(err, ErrStale) {
		t.Fatalf("superseded load returned %v, want ErrStale", err)
	}
	if m.Active() != SectionOffers {
		t.Fatalf("active = %s", m.Active())
	}
}

func TestResetReturnsToAuth(t *testing.T) {
	gate := &fakeGate{loggedIn: true}
	m := NewManager(gate, nopLogger{})
	m.Register(SectionDashboard, func(ctx context.Context) (interface{}, error) {
		return "stats", nil
	})

	if _, err := m.Navigate(context.Background(), SectionDashboard); err != nil {
		t.Fatal(err)
	}
	m.Reset()
	if m.Active() != SectionAuth {
		t.Fatalf("active = %s after reset", m.Active())
	}
}
