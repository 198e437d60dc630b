package css

import "regexp"

var (
	commentPattern    = regexp.MustCompile(`/\*[\s\S]*?\*/`)
	lineBreakPattern  = regexp.MustCompile(`[\n\r]`)
	separatorPattern  = regexp.MustCompile(`\s*([:;,{}])\s*`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Minimize removes comments and extra whitespace from css producing single
// line text suitable for block extraction. Comments must go first, otherwise
// a comment spanning several lines would leave fragments behind.
func Minimize(css string) string {
	if css == "" {
		return ""
	}
	css = commentPattern.ReplaceAllString(css, "")
	css = lineBreakPattern.ReplaceAllString(css, "")
	css = separatorPattern.ReplaceAllString(css, "$1")
	return whitespacePattern.ReplaceAllString(css, " ")
}
