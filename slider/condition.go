package slider

import "fmt"

// Props are the boolean render flags a renderer can style on.
type Props map[string]bool

// Props returns the current render flags. Interaction flags are suppressed
// while disabled.
func (s *Slider) Props() Props {
	enabled := !s.cfg.Disabled
	return Props{
		"disabled":  s.cfg.Disabled,
		"vertical":  s.cfg.Vertical,
		"reverse":   s.cfg.Reverse,
		"focused":   enabled && s.phase == Focused,
		"activated": enabled && s.phase == Dragging,
		"jumped":    enabled && s.phase == Jumped,
	}
}

// Check evaluates a style condition against props. A condition is a prop name,
// a predicate over Props, or a set of prop values that must all match.
// Any other condition is a programming error and panics.
func Check(condition any, props Props) bool {
	switch c := condition.(type) {
	case string:
		return props[c]
	case func(Props) bool:
		return c(props)
	case map[string]bool:
		for k, v := range c {
			if props[k] != v {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("unsupported condition type %T", condition))
	}
}
