package manifest

import (
	"errors"
	"testing"
)

func TestManifestCounts(t *testing.T) {
	var m Manifest
	m.Add("a.go", Created)
	m.Add("b.go", Skipped)
	m.Add("c.go", Overwritten)
	m.AddFailure("d.go", errors.New("disk full"))

	if got := m.Count(Created); got != 1 {
		t.Errorf("Created = %d", got)
	}
	if got := m.Count(Skipped); got != 1 {
		t.Errorf("Skipped = %d", got)
	}
	if got := m.Count(Overwritten); got != 1 {
		t.Errorf("Overwritten = %d", got)
	}
	if got := m.Count(Failed); got != 1 {
		t.Errorf("Failed = %d", got)
	}

	fails := m.Failures()
	if len(fails) != 1 || fails[0].Path != "d.go" || fails[0].Err == nil {
		t.Errorf("Failures = %+v", fails)
	}
}

func TestManifestState(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		var m Manifest
		m.Add("a.go", Created)
		if m.State() != Completed {
			t.Errorf("State = %v", m.State())
		}
	})

	t.Run("partially_completed", func(t *testing.T) {
		var m Manifest
		m.Add("a.go", Created)
		m.AddFailure("b.go", errors.New("permission denied"))
		if m.State() != PartiallyCompleted {
			t.Errorf("State = %v", m.State())
		}
	})

	t.Run("empty_manifest_is_completed", func(t *testing.T) {
		var m Manifest
		if m.State() != Completed {
			t.Errorf("State = %v", m.State())
		}
	})
}
