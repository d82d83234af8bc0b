package platform

import (
	"fmt"

	"github.com/mj1618/scap/internal/model"
)

type resolver struct {
	src interface {
		ContentSource
		DisplayModeSource
	}
}

func (r *resolver) GetMainDisplay() (model.Target, error) {
	mainID, err := r.src.MainDisplayID()
	if err != nil {
		return model.Target{}, fault("query main display", err)
	}
	content, err := r.src.ShareableContent()
	if err != nil {
		return model.Target{}, fmt.Errorf("failed to query shareable content: %w", err)
	}
	for _, d := range content.Displays {
		if d.ID == mainID {
			return displayTarget(d), nil
		}
	}
	return model.Target{}, fault("find main display", fmt.Errorf("display %d not in enumeration of %d displays", mainID, len(content.Displays)))
}

func (r *resolver) GetScaleFactor(displayID uint32) (uint64, error) {
	mode, err := r.src.DisplayMode(displayID)
	if err != nil {
		return 0, fmt.Errorf("failed to read display mode for display %d: %w", displayID, err)
	}
	return ScaleFactor(mode)
}

// ScaleFactor is the integer quotient PixelWidth / Width. Fractional scales
// truncate: 2560/1920 is 1.
func ScaleFactor(m DisplayMode) (uint64, error) {
	if m.Width == 0 {
		return 0, ErrZeroLogicalWidth
	}
	return m.PixelWidth / m.Width, nil
}
