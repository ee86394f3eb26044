package dashboard_test

import (
	"testing"

	"github.com/jrsteele09/go-aqua-client/dashboard"
	"github.com/stretchr/testify/require"
)

func TestProgressOffset(t *testing.T) {
	c := dashboard.Circumference(54)

	tests := []struct {
		name     string
		consumed int
		goal     int
		want     float64
	}{
		{"quarter", 500, 2000, c * 0.75},
		{"empty", 0, 2000, c},
		{"exactly at goal", 2000, 2000, 0},
		{"over goal is clamped", 2500, 2000, 0},
		{"negative consumption is clamped", -100, 2000, c},
		{"no goal, nothing consumed", 0, 0, c},
		{"no goal, something consumed", 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, dashboard.ProgressOffset(tt.consumed, tt.goal, c), 1e-9)
		})
	}
}

func TestParseModal(t *testing.T) {
	m, ok := dashboard.ParseModal("settings")
	require.True(t, ok)
	require.Equal(t, dashboard.ModalSettings, m)

	_, ok = dashboard.ParseModal("other")
	require.False(t, ok)
}
