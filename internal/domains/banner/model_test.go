package banner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tp(t time.Time) *time.Time { return &t }

func TestVisibleAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name    string
		banner  Banner
		visible bool
	}{
		{"no window", Banner{IsActive: true}, true},
		{"inactive", Banner{IsActive: false}, false},
		{"started, open end", Banner{IsActive: true, StartDate: tp(past)}, true},
		{"not started yet", Banner{IsActive: true, StartDate: tp(future)}, false},
		{"open start, not ended", Banner{IsActive: true, EndDate: tp(future)}, true},
		{"already ended", Banner{IsActive: true, EndDate: tp(past)}, false},
		{"inside window", Banner{IsActive: true, StartDate: tp(past), EndDate: tp(future)}, true},
		// Both bounds must hold: a satisfied end date cannot rescue an
		// unsatisfied start date, and vice versa.
		{"future window", Banner{IsActive: true, StartDate: tp(future), EndDate: tp(future.Add(time.Hour))}, false},
		{"expired window", Banner{IsActive: true, StartDate: tp(past.Add(-time.Hour)), EndDate: tp(past)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, tt.banner.VisibleAt(now))
		})
	}
}
