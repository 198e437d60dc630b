package css

import (
	"regexp"
	"slices"
	"strings"
)

// propertyNames maps directional property names to their mirrored
// counterparts. Properties not listed here keep their names.
var propertyNames = map[string]string{
	"margin-left":  "margin-right",
	"margin-right": "margin-left",

	"padding-left":  "padding-right",
	"padding-right": "padding-left",

	"border-left":  "border-right",
	"border-right": "border-left",

	"border-left-width":  "border-right-width",
	"border-right-width": "border-left-width",

	"border-radius-bottomleft":  "border-radius-bottomright",
	"border-radius-bottomright": "border-radius-bottomleft",
	"border-radius-topleft":     "border-radius-topright",
	"border-radius-topright":    "border-radius-topleft",

	"-moz-border-radius-bottomright": "-moz-border-radius-bottomleft",
	"-moz-border-radius-bottomleft":  "-moz-border-radius-bottomright",
	"-moz-border-radius-topright":    "-moz-border-radius-topleft",
	"-moz-border-radius-topleft":     "-moz-border-radius-topright",

	"-webkit-border-top-right-radius":    "-webkit-border-top-left-radius",
	"-webkit-border-top-left-radius":     "-webkit-border-top-right-radius",
	"-webkit-border-bottom-right-radius": "-webkit-border-bottom-left-radius",
	"-webkit-border-bottom-left-radius":  "-webkit-border-bottom-right-radius",

	"left":  "right",
	"right": "left",
}

// valueGroup binds a set of property names to the swap applied to their
// values. Order of groups is the order of built-in RTL translations.
type valueGroup struct {
	name       string
	properties []string
	swap       func(string) string
}

var valueGroups = []valueGroup{
	{name: "direction", properties: []string{"direction"}, swap: DirectionSwap},
	{name: "side", properties: []string{"text-align", "float", "clear"}, swap: SideSwap},
	{name: "edge", properties: []string{"margin", "padding"}, swap: QuadSwap},
	{name: "shadow", properties: []string{"box-shadow", "-webkit-box-shadow", "-moz-box-shadow"}, swap: QuadSwap},
	{name: "corner", properties: []string{"border-radius", "-moz-border-radius", "-webkit-border-radius"}, swap: CornerSwap},
	{name: "position", properties: []string{"background-position"}, swap: PositionSwap},
}

// valueSwaps is valueGroups indexed by property name.
var valueSwaps = indexValueGroups(valueGroups)

func indexValueGroups(groups []valueGroup) map[string]func(string) string {
	index := make(map[string]func(string) string)
	for _, g := range groups {
		for _, p := range g.properties {
			index[p] = g.swap
		}
	}
	return index
}

// renameProperty returns mirrored property name.
func renameProperty(property string) string {
	if name, ok := propertyNames[property]; ok {
		return name
	}
	return property
}

// swapValue rewrites value according to property name.
func swapValue(property, value string) string {
	if swap, ok := valueSwaps[property]; ok {
		return swap(value)
	}
	return value
}

// exactPattern builds regular expression matching any of the names exactly.
func exactPattern(names ...string) *regexp.Regexp {
	quoted := make([]string, 0, len(names))
	for _, n := range names {
		quoted = append(quoted, regexp.QuoteMeta(n))
	}
	slices.Sort(quoted)
	return regexp.MustCompile(`^(?:` + strings.Join(quoted, "|") + `)$`)
}

// FlippedProperties returns sorted names of all properties the built-in flip
// renames or rewrites values of.
func FlippedProperties() []string {
	names := make([]string, 0, len(propertyNames)+len(valueSwaps))
	for n := range propertyNames {
		names = append(names, n)
	}
	for n := range valueSwaps {
		names = append(names, n)
	}
	slices.Sort(names)
	return slices.Compact(names)
}
