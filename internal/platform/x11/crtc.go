package x11

// output is an active RandR output and the CRTC driving it.
type output struct {
	ID    uint32
	Width int
}

// crtcState is the part of a CRTC reply needed to enumerate displays.
type crtcState struct {
	Width   int
	Height  int
	Outputs []uint32
}

func (c crtcState) enabled() bool {
	return c.Width > 0 && c.Height > 0 && len(c.Outputs) > 0
}

// activeFromCrtcs lists enabled CRTCs in order. A CRTC driving several
// mirrored outputs is reported once, by its first output.
func activeFromCrtcs(crtcs []crtcState) []output {
	var outputs []output
	for _, c := range crtcs {
		if !c.enabled() {
			continue
		}
		outputs = append(outputs, output{ID: c.Outputs[0], Width: c.Width})
	}
	return outputs
}

// mainOutput maps the RandR primary output to the id under which its CRTC
// is enumerated. With no primary (0), or a primary no enabled CRTC drives,
// the first active output stands in. ok is false when nothing is active.
func mainOutput(crtcs []crtcState, primary uint32) (id uint32, ok bool) {
	if primary != 0 {
		for _, c := range crtcs {
			if !c.enabled() {
				continue
			}
			for _, o := range c.Outputs {
				if o == primary {
					return c.Outputs[0], true
				}
			}
		}
	}
	active := activeFromCrtcs(crtcs)
	if len(active) == 0 {
		return 0, false
	}
	return active[0].ID, true
}
