package models

import (
	"testing"
	"time"
)

func TestSuppressed(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	cases := []struct {
		name  string
		alert Alert
		want  bool
	}{
		{"not suppressed status", Alert{Status: StatusFiring, SuppressedUntil: &future}, false},
		{"indefinite suppression", Alert{Status: StatusSuppressed}, true},
		{"deadline ahead", Alert{Status: StatusSuppressed, SuppressedUntil: &future}, true},
		{"deadline elapsed", Alert{Status: StatusSuppressed, SuppressedUntil: &past}, false},
	}

	for _, tc := range cases {
		if got := tc.alert.Suppressed(now); got != tc.want {
			t.Errorf("%s: Suppressed = %v, want %v", tc.name, got, tc.want)
		}
	}
}
