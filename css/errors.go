package css

import "errors"

var (
	// ErrInvalidDeclaration is returned when text is not a property:value pair.
	ErrInvalidDeclaration = errors.New("invalid declaration")
	// ErrInvalidRule is returned when text is not a selector{declarations} block.
	ErrInvalidRule = errors.New("invalid rule")
	// ErrInvalidStylesheet is returned when no rules could be extracted.
	ErrInvalidStylesheet = errors.New("invalid stylesheet")

	// ErrNoMatchers is returned for a translation without matchers.
	ErrNoMatchers = errors.New("at least one matcher is required")
	// ErrMatcherKey is returned when a matcher key is neither property nor value.
	ErrMatcherKey = errors.New("matcher keys must be property or value")
	// ErrMatcher is returned for a nil matcher.
	ErrMatcher = errors.New("matchers must be able to match")
	// ErrNoTransform is returned for a translation without transform.
	ErrNoTransform = errors.New("no transform given")
	// ErrNoHandler is returned for a translator without handler.
	ErrNoHandler = errors.New("no handler given")
)
