package convert

import (
	"fmt"
)

var errNotMap = fmt.Errorf("input data is not a map")
var errNotStringValue = fmt.Errorf("map value is not a string")

// ToStringMap converts map[string]any or map[string]string to
// map[string]string. Returns an error if input is not a map or if a
// map[string]any value is not a string. Returns a nil map for nil input.
func ToStringMap(data any) (map[string]string, error) {
	if data == nil {
		return nil, nil
	}
	if m, ok := data.(map[string]string); ok {
		return m, nil
	}
	if mAny, ok := data.(map[string]any); ok {
		result := make(map[string]string, len(mAny))
		for k, v := range mAny {
			vStr, okStr := v.(string)
			if !okStr {
				return nil, fmt.Errorf("key '%s': %w (type %T)", k, errNotStringValue, v)
			}
			result[k] = vStr
		}
		return result, nil
	}
	return nil, fmt.Errorf("%w: input type %T", errNotMap, data)
}
