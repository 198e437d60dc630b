package css

import (
	"regexp"
	"strconv"
	"strings"
)

// DirectionSwap converts between "rtl" and "ltr". Any other value is returned
// unchanged.
func DirectionSwap(val string) string {
	switch val {
	case "rtl":
		return "ltr"
	case "ltr":
		return "rtl"
	default:
		return val
	}
}

// SideSwap converts between "left" and "right". Any other value is returned
// unchanged.
func SideSwap(val string) string {
	switch val {
	case "right":
		return "left"
	case "left":
		return "right"
	default:
		return val
	}
}

// QuadSwap (edge swap) swaps horizontal components of 4-value edge shorthand
// (padding, margin): "1px 2px 3px 4px" becomes "1px 4px 3px 2px". Values with any
// other number of components are returned unchanged.
func QuadSwap(val string) string {
	points := strings.Fields(val)
	if len(points) != 4 {
		return val
	}
	return strings.Join([]string{points[0], points[3], points[2], points[1]}, " ")
}

// CornerSwap (border-radius swap) swaps horizontal corners of border-radius shorthand. Corners go
// top-left, top-right, bottom-right, bottom-left so all of them move, and 2
// and 3 value forms are expanded as needed. Vertical radius syntax (with "/")
// is left alone.
func CornerSwap(val string) string {
	if strings.Contains(val, "/") {
		return val
	}
	p := strings.Fields(val)
	switch len(p) {
	case 4:
		return strings.Join([]string{p[1], p[0], p[3], p[2]}, " ")
	case 3:
		return strings.Join([]string{p[1], p[0], p[1], p[2]}, " ")
	case 2:
		return strings.Join([]string{p[1], p[0]}, " ")
	default:
		return val
	}
}

var (
	percentPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)%$`)
	lengthPattern  = regexp.MustCompile(`^(\d+[a-z]{2,3})`)
)

// PositionSwap mirrors background-position like value horizontally: named
// sides are swapped ("left center" → "right center"), leading percentage is
// inverted ("25% 100%" → "75% 100%") and leading length is anchored to the
// right edge ("25px" → "right 25px center").
//
// NOTE: only a first component is examined, 4-value syntax with offsets
// relative to a named edge gets the side swap only.
func PositionSwap(val string) string {
	switch {
	case strings.Contains(val, "left"):
		val = strings.ReplaceAll(val, "left", "right")
	case strings.Contains(val, "right"):
		val = strings.ReplaceAll(val, "right", "left")
	}

	points := strings.Fields(val)
	if len(points) == 0 {
		return val
	}

	if m := percentPattern.FindStringSubmatch(points[0]); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return val
		}
		out := []string{strconv.FormatFloat(100-n, 'f', -1, 64) + "%"}
		if len(points) > 1 {
			out = append(out, points[1])
		}
		return strings.Join(out, " ")
	}

	if m := lengthPattern.FindStringSubmatch(points[0]); m != nil {
		y := "center"
		if len(points) > 1 {
			y = points[1]
		}
		return strings.Join([]string{"right", m[1], y}, " ")
	}
	return val
}
