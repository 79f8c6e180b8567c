package main

import (
	"slices"
	"testing"
)

func TestParseSweep(t *testing.T) {
	key, values, err := parseSweep(" evaporation_rate = 0.001, 0.002,,0.004 ")
	if err != nil {
		t.Fatalf("parseSweep: %v", err)
	}
	if key != "evaporation_rate" || !slices.Equal(values, []string{"0.001", "0.002", "0.004"}) {
		t.Fatalf("got %q %v", key, values)
	}
	for _, bad := range []string{"evaporation_rate", "=1,2", "key=,"} {
		if _, _, err := parseSweep(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
