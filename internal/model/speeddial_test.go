package model

import "testing"

func TestNormalizeIcon(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", DefaultDialIcon},
		{"   ", DefaultDialIcon},
		{"🚀", "🚀"},
		{"ab", "ab"},
		{"abc", "ab"},
		{"🚀🔥💧", "🚀🔥"},
	}

	for _, test := range tests {
		result := NormalizeIcon(test.input)
		if result != test.expected {
			t.Errorf("NormalizeIcon(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestNormalizeColor(t *testing.T) {
	if got := NormalizeColor(""); got != DefaultDialColor {
		t.Errorf("NormalizeColor(\"\") = %q, expected %q", got, DefaultDialColor)
	}

	if got := NormalizeColor("#ff0000"); got != "#ff0000" {
		t.Errorf("NormalizeColor(\"#ff0000\") = %q, expected unchanged", got)
	}
}

func TestSpeedDial_IsPersisted(t *testing.T) {
	d := &SpeedDial{Title: "Google", URL: "https://google.com"}
	if d.IsPersisted() {
		t.Error("Expected record without ID to not be persisted")
	}

	d.ID = "a2c0b7e4-0000-0000-0000-000000000000"
	if !d.IsPersisted() {
		t.Error("Expected record with ID to be persisted")
	}
}

func TestCategory_DisplayName(t *testing.T) {
	tests := []struct {
		category Category
		expected string
	}{
		{Category{ID: 1, Name: "General", Icon: "📁"}, "📁 General"},
		{Category{ID: 2, Name: "Work"}, "Work"},
	}

	for _, test := range tests {
		if got := test.category.DisplayName(); got != test.expected {
			t.Errorf("DisplayName() = %q, expected %q", got, test.expected)
		}
	}
}

func TestStepEntry_HasLabel(t *testing.T) {
	tests := []struct {
		label    string
		expected bool
	}{
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{"Build", true},
		{"  Deploy  ", true},
	}

	for _, test := range tests {
		e := &StepEntry{Position: 1, Label: test.label}
		if got := e.HasLabel(); got != test.expected {
			t.Errorf("HasLabel() with label %q = %v, expected %v", test.label, got, test.expected)
		}
	}
}
