package clipboard

import "testing"

func TestClipboard(t *testing.T) {
	cb := New()

	if _, ok := cb.Get(); ok {
		t.Errorf("Fresh clipboard claims to hold data")
	}

	cb.Set("Hello, clipboard!")
	if data, ok := cb.Get(); !ok || data != "Hello, clipboard!" {
		t.Errorf("Got (%q, %v)", data, ok)
	}

	// Empty string is still a value
	cb.Set("")
	if data, ok := cb.Get(); !ok || data != "" {
		t.Errorf("Empty value not kept: (%q, %v)", data, ok)
	}

	cb.Clear()
	if _, ok := cb.Get(); ok {
		t.Errorf("Clipboard still holds data after clear")
	}
	// Clearing twice is harmless
	cb.Clear()
}
