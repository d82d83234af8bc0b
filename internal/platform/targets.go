package platform

import (
	"fmt"

	"github.com/mj1618/scap/internal/model"
)

type enumerator struct {
	src ContentSource
}

func (e *enumerator) GetTargets() ([]model.Target, error) {
	content, err := e.src.ShareableContent()
	if err != nil {
		return nil, fmt.Errorf("failed to query shareable content: %w", err)
	}
	return ContentTargets(content), nil
}

// ContentTargets maps one content snapshot to targets: every display, then
// every active window. Inactive windows are dropped.
func ContentTargets(c Content) []model.Target {
	targets := make([]model.Target, 0, len(c.Displays)+len(c.Windows))
	for _, d := range c.Displays {
		targets = append(targets, displayTarget(d))
	}
	for _, w := range c.Windows {
		if !w.Active {
			continue
		}
		title := w.Title
		if title == "" {
			title = model.UnknownWindowTitle
		}
		targets = append(targets, model.Target{
			ID:    w.ID,
			Title: title,
			Type:  model.TargetWindow,
		})
	}
	return targets
}

func displayTarget(d RawDisplay) model.Target {
	return model.Target{
		ID:    d.ID,
		Title: model.DisplayTitle(d.ID),
		Type:  model.TargetDisplay,
	}
}

// Resolve re-enumerates and returns the target matching key. Use it to turn
// a caller's selection into a currently-existing target before capture.
func Resolve(e TargetEnumerator, key model.TargetKey) (model.Target, error) {
	targets, err := e.GetTargets()
	if err != nil {
		return model.Target{}, err
	}
	t, ok := model.NewTargetSet(targets).Get(key)
	if !ok {
		return model.Target{}, fmt.Errorf("%s: %w", key, ErrTargetNotFound)
	}
	return t, nil
}
