package ui

import "testing"

func TestLayerSelectorCyclesAndToggles(t *testing.T) {
	names := []string{"moisture", "nitrogen"}
	l := NewLayerSelector(names)
	names[0] = "mutated"

	if l.Visible() || l.Label() != "overlay off" {
		t.Fatalf("overlay should start hidden, got %q", l.Label())
	}
	if l.Current() != "moisture" {
		t.Fatalf("selector should copy names, got %q", l.Current())
	}
	l.Toggle()
	if !l.Visible() || l.Label() != "overlay moisture" {
		t.Fatalf("unexpected label %q", l.Label())
	}
	l.Next()
	if l.Current() != "nitrogen" {
		t.Fatalf("expected nitrogen, got %q", l.Current())
	}
	l.Next()
	if l.Current() != "moisture" {
		t.Fatal("selector should wrap around")
	}
	l.SetVisible(false)
	if l.Visible() {
		t.Fatal("SetVisible(false) should hide the overlay")
	}
}

func TestLayerSelectorEmpty(t *testing.T) {
	l := NewLayerSelector(nil)
	l.Toggle()
	l.Next()
	if l.Visible() || l.Current() != "" {
		t.Fatal("empty selector can never be visible")
	}
}
