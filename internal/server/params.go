package server

import (
	"fmt"
	"math"

	"github.com/mj1618/scap/internal/model"
)

func hasParam(params map[string]interface{}, key string) bool {
	_, ok := params[key]
	return ok
}

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// idParam reads an OS target id. JSON numbers arrive as float64.
func idParam(params map[string]interface{}, key string) (uint32, error) {
	v, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("missing required parameter: %s", key)
	}
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	default:
		return 0, fmt.Errorf("parameter %s must be a number, got %T", key, v)
	}
	if n < 0 || n > math.MaxUint32 || n != math.Trunc(n) {
		return 0, fmt.Errorf("parameter %s out of range: %v", key, v)
	}
	return uint32(n), nil
}

// targetKeyParam accepts either target ("window:42") or type plus id.
func targetKeyParam(params map[string]interface{}) (model.TargetKey, error) {
	if hasParam(params, "target") {
		return model.ParseTargetKey(stringParam(params, "target", ""))
	}
	typ, err := model.ParseTargetType(stringParam(params, "type", ""))
	if err != nil {
		return model.TargetKey{}, err
	}
	id, err := idParam(params, "id")
	if err != nil {
		return model.TargetKey{}, err
	}
	return model.TargetKey{Type: typ, ID: id}, nil
}
