package config

import "strings"

// CleanFileName removes characters not allowed in file names. Leading dots
// are dropped so result is never a hidden file.
func CleanFileName(in string) string {
	out := strings.TrimLeft(strings.Map(func(sym rune) rune {
		if sym == 0 || strings.ContainsRune(forbiddenChars, sym) {
			return -1
		}
		return sym
	}, in), ".")
	if len(out) == 0 {
		out = "_bad_file_name_"
	}
	return out
}
