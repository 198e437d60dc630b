// Package css parses flat CSS stylesheets into rules and declarations and
// rewrites directional declarations to mirror the writing direction of a
// layout (LTR <-> RTL).
//
// Parsing is deliberately regex based: input is minimized first, then split
// into selector{declarations} blocks and property:value fragments. Nested
// blocks (@media and friends) are not supported.
//
// Two ways of rewriting are available. Flip applies the built-in table of
// property renames and value swaps (plus optional Translators working on raw
// values). Translate applies an ordered list of Translations, each pairing a
// property and/or value matcher with a transform. RTL returns the built-in
// table expressed as Translations, so R2 and Flip produce the same result.
package css
