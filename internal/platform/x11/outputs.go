//go:build linux

package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/randr"
)

// crtcs reads every CRTC of the root screen. CRTCs whose info cannot be
// read are reported as disabled.
func (c *Connection) crtcs() ([]crtcState, error) {
	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	states := make([]crtcState, 0, len(resources.Crtcs))
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			states = append(states, crtcState{})
			continue
		}
		outs := make([]uint32, len(info.Outputs))
		for i, o := range info.Outputs {
			outs[i] = uint32(o)
		}
		states = append(states, crtcState{
			Width:   int(info.Width),
			Height:  int(info.Height),
			Outputs: outs,
		})
	}
	return states, nil
}

// activeOutputs lists outputs with an enabled CRTC, in CRTC order.
func (c *Connection) activeOutputs() ([]output, error) {
	states, err := c.crtcs()
	if err != nil {
		return nil, err
	}
	return activeFromCrtcs(states), nil
}

// primaryOutput returns the enumerated id of the display RandR marks
// primary. A mirrored primary maps to its CRTC's first output.
func (c *Connection) primaryOutput() (uint32, error) {
	reply, err := randr.GetOutputPrimary(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return 0, fmt.Errorf("failed to get primary output: %w", err)
	}
	states, err := c.crtcs()
	if err != nil {
		return 0, err
	}
	id, ok := mainOutput(states, uint32(reply.Output))
	if !ok {
		return 0, errors.New("no active outputs")
	}
	return id, nil
}

// randrVersion returns the server's RandR version as "major.minor".
func (c *Connection) randrVersion() (string, error) {
	reply, err := randr.QueryVersion(c.XUtil.Conn(), 1, 6).Reply()
	if err != nil {
		return "", fmt.Errorf("randr query version: %w", err)
	}
	return fmt.Sprintf("%d.%d", reply.MajorVersion, reply.MinorVersion), nil
}
