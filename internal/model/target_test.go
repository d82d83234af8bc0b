package model

import (
	"reflect"
	"testing"
)

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		id   uint32
		want string
	}{
		{0, "Display 0"},
		{1, "Display 1"},
		{69734208, "Display 69734208"},
	}
	for _, tt := range tests {
		if got := DisplayTitle(tt.id); got != tt.want {
			t.Errorf("DisplayTitle(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestUnknownWindowTitle_NotEmpty(t *testing.T) {
	if UnknownWindowTitle == "" {
		t.Fatal("placeholder title must not be empty")
	}
}

func TestParseTargetType(t *testing.T) {
	tests := []struct {
		input string
		want  TargetType
	}{
		{"display", TargetDisplay},
		{"Display", TargetDisplay},
		{" window ", TargetWindow},
		{"WINDOW", TargetWindow},
	}
	for _, tt := range tests {
		got, err := ParseTargetType(tt.input)
		if err != nil {
			t.Errorf("ParseTargetType(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseTargetType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
	if _, err := ParseTargetType("monitor"); err == nil {
		t.Error("ParseTargetType(\"monitor\") should fail")
	}
}

func TestParseTargetKey(t *testing.T) {
	k, err := ParseTargetKey("window:42")
	if err != nil {
		t.Fatal(err)
	}
	if k != (TargetKey{Type: TargetWindow, ID: 42}) {
		t.Errorf("got %+v", k)
	}
	if k.String() != "window:42" {
		t.Errorf("String() = %q", k.String())
	}

	for _, s := range []string{"", "window", "window:", "window:-1", "tab:1", "display:x"} {
		if _, err := ParseTargetKey(s); err == nil {
			t.Errorf("ParseTargetKey(%q) should fail", s)
		}
	}
}

func TestTargetSet_KeyIncludesType(t *testing.T) {
	s := NewTargetSet([]Target{
		{ID: 1, Title: "Display 1", Type: TargetDisplay},
		{ID: 1, Title: "Terminal", Type: TargetWindow},
	})
	d, ok := s.Get(TargetKey{Type: TargetDisplay, ID: 1})
	if !ok || d.Title != "Display 1" {
		t.Errorf("display lookup = %+v, %v", d, ok)
	}
	w, ok := s.Get(TargetKey{Type: TargetWindow, ID: 1})
	if !ok || w.Title != "Terminal" {
		t.Errorf("window lookup = %+v, %v", w, ok)
	}
	if _, ok := s.Get(TargetKey{Type: TargetWindow, ID: 2}); ok {
		t.Error("unexpected hit for window:2")
	}
}

func TestTargetSet_FirstDuplicateWins(t *testing.T) {
	s := NewTargetSet([]Target{
		{ID: 9, Title: "first", Type: TargetWindow},
		{ID: 9, Title: "second", Type: TargetWindow},
	})
	if w, _ := s.Get(TargetKey{Type: TargetWindow, ID: 9}); w.Title != "first" {
		t.Errorf("Get(window:9) = %+v, want the first entry", w)
	}
}

func TestTargetSet_ZeroValue(t *testing.T) {
	var s TargetSet
	s.Add(Target{ID: 3, Type: TargetWindow})
	if _, ok := s.Get(TargetKey{Type: TargetWindow, ID: 3}); !ok {
		t.Error("zero-value set should accept Add")
	}
}

func TestFilterTargets(t *testing.T) {
	targets := []Target{
		{ID: 2, Type: TargetDisplay},
		{ID: 9, Title: "a", Type: TargetWindow},
		{ID: 1, Type: TargetDisplay},
		{ID: 9, Title: "b", Type: TargetWindow},
	}

	tests := []struct {
		name              string
		displays, windows bool
		want              []Target
	}{
		{"neither", false, false, targets},
		{"both", true, true, targets},
		{"displays", true, false, []Target{targets[0], targets[2]}},
		{"windows keeps duplicates", false, true, []Target{targets[1], targets[3]}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTargets(targets, tt.displays, tt.windows)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterTargets() = %+v, want %+v", got, tt.want)
			}
		})
	}

	if got := FilterTargets([]Target{{ID: 1, Type: TargetDisplay}}, false, true); got == nil || len(got) != 0 {
		t.Errorf("FilterTargets() with no match = %#v, want empty non-nil", got)
	}
}
