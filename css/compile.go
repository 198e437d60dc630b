package css

import "fmt"

// Definition is a not yet validated Translation.
type Definition struct {
	Matchers  Matchers
	Transform TransformFunc
}

// Match pairs matchers with transform.
func Match(matchers Matchers, transform TransformFunc) Definition {
	return Definition{Matchers: matchers, Transform: transform}
}

// Compile turns ordered batch of definitions into translations preserving
// order. Empty batch results in nil.
//
//	list, err := css.Compile(
//		css.Match(css.Matchers{css.MatchValue: regexp.MustCompile(`^red$`)}, func(_, v *string) {
//			*v = "green"
//		}),
//	)
func Compile(defs ...Definition) ([]*Translation, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	list := make([]*Translation, 0, len(defs))
	for i, d := range defs {
		t, err := NewTranslation(d.Matchers, d.Transform)
		if err != nil {
			return nil, fmt.Errorf("translation %d: %w", i, err)
		}
		list = append(list, t)
	}
	return list, nil
}
