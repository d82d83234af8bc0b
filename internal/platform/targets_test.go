package platform

import (
	"errors"
	"testing"

	"github.com/mj1618/scap/internal/model"
)

func sampleContent() Content {
	return Content{
		Displays: []RawDisplay{{ID: 69734208}, {ID: 2}},
		Windows: []RawWindow{
			{ID: 101, Title: "Terminal", Active: true},
			{ID: 102, Title: "Hidden", Active: false},
			{ID: 103, Title: "", Active: true},
			{ID: 2, Title: "Same id as a display", Active: true},
			{ID: 104, Title: "", Active: false},
		},
	}
}

func TestContentTargets_DisplaysFirstThenWindows(t *testing.T) {
	got := ContentTargets(sampleContent())
	want := []model.Target{
		{ID: 69734208, Title: "Display 69734208", Type: model.TargetDisplay},
		{ID: 2, Title: "Display 2", Type: model.TargetDisplay},
		{ID: 101, Title: "Terminal", Type: model.TargetWindow},
		{ID: 103, Title: model.UnknownWindowTitle, Type: model.TargetWindow},
		{ID: 2, Title: "Same id as a display", Type: model.TargetWindow},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d targets, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("target[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestContentTargets_OnlyActiveWindows(t *testing.T) {
	c := sampleContent()
	active := make(map[uint32]bool)
	for _, w := range c.Windows {
		if w.Active {
			active[w.ID] = true
		}
	}
	for _, tgt := range ContentTargets(c) {
		if tgt.Type == model.TargetWindow && !active[tgt.ID] {
			t.Errorf("inactive window %d returned", tgt.ID)
		}
	}
}

func TestContentTargets_TitlesNeverEmpty(t *testing.T) {
	for _, tgt := range ContentTargets(sampleContent()) {
		if tgt.Title == "" {
			t.Errorf("target %+v has empty title", tgt)
		}
		if tgt.Type == model.TargetDisplay && tgt.Title != model.DisplayTitle(tgt.ID) {
			t.Errorf("display title = %q, want %q", tgt.Title, model.DisplayTitle(tgt.ID))
		}
	}
}

func TestContentTargets_Empty(t *testing.T) {
	got := ContentTargets(Content{})
	if got == nil || len(got) != 0 {
		t.Errorf("ContentTargets(empty) = %#v, want empty non-nil slice", got)
	}
}

func TestGetTargets_RequeriesEveryCall(t *testing.T) {
	src := &fakeSource{content: sampleContent()}
	p := FromSource(src, nil)

	if _, err := p.Targets.GetTargets(); err != nil {
		t.Fatal(err)
	}
	src.content = Content{Displays: []RawDisplay{{ID: 7}}}
	got, err := p.Targets.GetTargets()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != 7 {
		t.Errorf("second enumeration should reflect new OS state, got %+v", got)
	}
	if src.contentCalls != 2 {
		t.Errorf("contentCalls = %d, want 2", src.contentCalls)
	}
}

func TestGetTargets_Error(t *testing.T) {
	cause := errors.New("user declined")
	p := FromSource(&fakeSource{contentErr: cause}, nil)

	_, err := p.Targets.GetTargets()
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if IsEnvironmentFault(err) {
		t.Error("an enumeration failure is not an environment fault")
	}
}

func TestResolve(t *testing.T) {
	p := FromSource(&fakeSource{content: sampleContent()}, nil)

	got, err := Resolve(p.Targets, model.TargetKey{Type: model.TargetWindow, ID: 2})
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Same id as a display" {
		t.Errorf("Resolve(window:2) = %+v, want the window not the display", got)
	}

	got, err = Resolve(p.Targets, model.TargetKey{Type: model.TargetDisplay, ID: 2})
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Display 2" {
		t.Errorf("Resolve(display:2) = %+v", got)
	}

	_, err = Resolve(p.Targets, model.TargetKey{Type: model.TargetWindow, ID: 102})
	if !errors.Is(err, ErrTargetNotFound) {
		t.Errorf("inactive window should not resolve, got %v", err)
	}
}
