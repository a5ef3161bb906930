package output

import (
	"testing"
	"time"

	"github.com/chefstream/cli/internal/api"
)

func TestRelativeTime(t *testing.T) {
	t.Run("just now", func(t *testing.T) {
		got := RelativeTime(time.Now())
		if got != "just now" {
			t.Errorf("expected 'just now', got %q", got)
		}
	})

	t.Run("minutes ago", func(t *testing.T) {
		got := RelativeTime(time.Now().Add(-5 * time.Minute))
		if got != "5m ago" {
			t.Errorf("expected '5m ago', got %q", got)
		}
	})

	t.Run("hours ago", func(t *testing.T) {
		got := RelativeTime(time.Now().Add(-3 * time.Hour))
		if got != "3h ago" {
			t.Errorf("expected '3h ago', got %q", got)
		}
	})

	t.Run("days ago", func(t *testing.T) {
		got := RelativeTime(time.Now().Add(-7 * 24 * time.Hour))
		if got != "7d ago" {
			t.Errorf("expected '7d ago', got %q", got)
		}
	})

	t.Run("old timestamps fall back to a date", func(t *testing.T) {
		old := time.Date(2020, 3, 14, 0, 0, 0, 0, time.UTC)
		got := RelativeTime(old)
		if got != "2020-03-14" {
			t.Errorf("expected '2020-03-14', got %q", got)
		}
	})
}

func TestBrowser(t *testing.T) {
	name := "Firefox"
	version := "130"

	t.Run("nil browser renders a dash", func(t *testing.T) {
		if got := browser(api.Session{}); got != "-" {
			t.Errorf("expected '-', got %q", got)
		}
	})

	t.Run("name only", func(t *testing.T) {
		if got := browser(api.Session{BrowserName: &name}); got != "Firefox" {
			t.Errorf("expected 'Firefox', got %q", got)
		}
	})

	t.Run("name and version", func(t *testing.T) {
		got := browser(api.Session{BrowserName: &name, BrowserVersion: &version})
		if got != "Firefox 130" {
			t.Errorf("expected 'Firefox 130', got %q", got)
		}
	})
}

func TestLocation(t *testing.T) {
	city := "Lisbon"
	country := "PT"

	tests := []struct {
		name string
		s    api.Session
		want string
	}{
		{"none", api.Session{}, "-"},
		{"city only", api.Session{LocationCity: &city}, "Lisbon"},
		{"country only", api.Session{LocationCountry: &country}, "PT"},
		{"both", api.Session{LocationCity: &city, LocationCountry: &country}, "Lisbon, PT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := location(tt.s); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
