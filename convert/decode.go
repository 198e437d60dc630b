package convert

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"
)

var charsetPattern = regexp.MustCompile(`^\s*@charset\s+["']([^"']+)["']\s*;`)

// decodeInput reads stylesheet converting it to UTF-8. When there is no BOM
// leading @charset rule decides the encoding. The @charset rule itself is
// always dropped since output is UTF-8.
func decodeInput(r io.Reader, enc srcEncoding, log *zap.Logger) ([]byte, error) {
	data, err := io.ReadAll(selectReader(r, enc))
	if err != nil {
		return nil, fmt.Errorf("unable to read stylesheet: %w", err)
	}

	loc := charsetPattern.FindSubmatchIndex(data)
	if loc == nil {
		return data, nil
	}
	name := string(data[loc[2]:loc[3]])
	data = data[loc[1]:]

	if enc != encUnknown || strings.EqualFold(name, "utf-8") {
		return data, nil
	}

	e, err := ianaindex.IANA.Encoding(name)
	if err != nil || e == nil {
		log.Warn("Unsupported stylesheet charset, assuming UTF-8", zap.String("charset", name), zap.Error(err))
		return data, nil
	}
	out, err := e.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("unable to decode stylesheet from %s: %w", name, err)
	}
	log.Debug("Stylesheet decoded", zap.String("charset", name))
	return out, nil
}
