package platform

import "testing"

func TestHasPermission_Idempotent(t *testing.T) {
	for _, granted := range []bool{true, false} {
		src := &fakeSource{granted: granted}
		p := FromSource(src, nil)

		first := p.Permission.HasPermission()
		second := p.Permission.HasPermission()
		if first != second {
			t.Errorf("granted=%v: HasPermission changed between calls: %v then %v", granted, first, second)
		}
		if first != granted {
			t.Errorf("HasPermission = %v, want %v", first, granted)
		}
		if src.requestHits != 0 {
			t.Error("HasPermission must not trigger a request")
		}
	}
}

func TestRequestPermission_ForwardsOSResult(t *testing.T) {
	src := &fakeSource{grantOnAsk: true}
	p := FromSource(src, nil)

	if p.Permission.HasPermission() {
		t.Fatal("expected no permission before request")
	}
	if !p.Permission.RequestPermission() {
		t.Error("RequestPermission should report the granted state")
	}
	if !p.Permission.HasPermission() {
		t.Error("HasPermission should reflect the grant")
	}
}

func TestRequestPermission_DeniedIsNotRetried(t *testing.T) {
	src := &fakeSource{}
	p := FromSource(src, nil)

	for i := 0; i < 3; i++ {
		if p.Permission.RequestPermission() {
			t.Fatal("expected denial")
		}
	}
	if src.requestHits != 3 {
		t.Errorf("each RequestPermission should call the OS exactly once, got %d calls for 3 requests", src.requestHits)
	}
}
