// Package common keeps enums shared by configuration and command line
// handling.
package common

//go:generate go tool go-enum --marshal --names --nocase --mustparse

// Specification of rendered stylesheet layout.
// ENUM(pretty, compact)
type OutputLayout int

// Specification of conversion requested from command line.
// ENUM(flip, translate)
type ConversionMode int

// Suffix returns default output name suffix for the conversion mode.
func (m ConversionMode) Suffix() string {
	switch m {
	case ConversionModeFlip:
		return "-rtl"
	case ConversionModeTranslate:
		return "-translated"
	default:
		// this should never happen
		panic("unsupported conversion mode requested")
	}
}
