package theme

import "testing"

func TestToggle(t *testing.T) {
	Apply(Light)
	t.Cleanup(func() { Apply(Light) })

	if got := Toggle(); got != Dark {
		t.Fatalf("Toggle() = %s, want dark", got)
	}
	if Primary != palettes[Dark].Primary {
		t.Error("Primary not switched to dark palette")
	}
	if got := Toggle(); got != Light {
		t.Fatalf("Toggle() = %s, want light", got)
	}
	if Text != palettes[Light].Text {
		t.Error("Text not switched to light palette")
	}
}

func TestApplyUnknownFallsBackToLight(t *testing.T) {
	t.Cleanup(func() { Apply(Light) })

	Apply(Mode("sepia"))
	if Current() != Light {
		t.Errorf("Current() = %s, want light", Current())
	}
}

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"dark":  Dark,
		"light": Light,
		"":      Light,
		"DARK":  Light,
	}
	for in, want := range tests {
		if got := ParseMode(in); got != want {
			t.Errorf("ParseMode(%q) = %s, want %s", in, got, want)
		}
	}
}
