package model

import (
	"fmt"
	"strconv"
	"strings"
)

// TargetType distinguishes the two kinds of capturable surface.
type TargetType string

const (
	TargetDisplay TargetType = "display"
	TargetWindow  TargetType = "window"
)

// UnknownWindowTitle is substituted when the OS reports a window without a title.
// Callers can compare against it to detect the untitled case.
const UnknownWindowTitle = "Unknown window"

// ParseTargetType converts a string flag value to TargetType.
func ParseTargetType(s string) (TargetType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "display":
		return TargetDisplay, nil
	case "window":
		return TargetWindow, nil
	default:
		return "", fmt.Errorf("unknown target type: %q (expected display or window)", s)
	}
}

// Target identifies one capturable surface. IDs are assigned by the OS, are
// unique only within their type, and are not stable across enumerations.
type Target struct {
	ID    uint32     `yaml:"id"    json:"id"`
	Title string     `yaml:"title" json:"title"`
	Type  TargetType `yaml:"type"  json:"type"`
}

// Key returns the map key for t.
func (t Target) Key() TargetKey {
	return TargetKey{Type: t.Type, ID: t.ID}
}

// DisplayTitle is the synthesized title for a display. The display path
// carries no OS-provided name.
func DisplayTitle(id uint32) string {
	return "Display " + strconv.FormatUint(uint64(id), 10)
}

// TargetKey identifies a target across both id spaces. Displays and windows
// may share a numeric id, so the type is part of the key.
type TargetKey struct {
	Type TargetType
	ID   uint32
}

func (k TargetKey) String() string {
	return fmt.Sprintf("%s:%d", k.Type, k.ID)
}

// ParseTargetKey parses "display:1" or "window:42".
func ParseTargetKey(s string) (TargetKey, error) {
	typ, id, ok := strings.Cut(s, ":")
	if !ok {
		return TargetKey{}, fmt.Errorf("invalid target %q: expected type:id", s)
	}
	return NewTargetKey(typ, id)
}

// NewTargetKey builds a key from separate type and id strings.
func NewTargetKey(typ, id string) (TargetKey, error) {
	t, err := ParseTargetType(typ)
	if err != nil {
		return TargetKey{}, err
	}
	n, err := strconv.ParseUint(strings.TrimSpace(id), 10, 32)
	if err != nil {
		return TargetKey{}, fmt.Errorf("invalid target id %q: %w", id, err)
	}
	return TargetKey{Type: t, ID: uint32(n)}, nil
}

// FilterTargets returns the targets of the requested kinds, in their
// original order and with duplicates kept. Neither or both flags select all.
func FilterTargets(targets []Target, displays, windows bool) []Target {
	if displays == windows {
		return targets
	}
	typ := TargetWindow
	if displays {
		typ = TargetDisplay
	}
	out := []Target{}
	for _, t := range targets {
		if t.Type == typ {
			out = append(out, t)
		}
	}
	return out
}

// TargetSet indexes targets by TargetKey. The first target seen for a key
// wins.
type TargetSet struct {
	index map[TargetKey]Target
}

// NewTargetSet indexes an enumeration result.
func NewTargetSet(targets []Target) *TargetSet {
	s := &TargetSet{index: make(map[TargetKey]Target, len(targets))}
	for _, t := range targets {
		s.Add(t)
	}
	return s
}

// Add inserts t unless its key is already present.
func (s *TargetSet) Add(t Target) {
	if s.index == nil {
		s.index = make(map[TargetKey]Target)
	}
	if _, ok := s.index[t.Key()]; ok {
		return
	}
	s.index[t.Key()] = t
}

// Get looks up a target by key.
func (s *TargetSet) Get(k TargetKey) (Target, bool) {
	t, ok := s.index[k]
	return t, ok
}
