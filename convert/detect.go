package convert

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// cssType only recognizes stylesheets starting with @charset rule, there is
// no reliable signature otherwise.
var cssType = filetype.NewType("css", "text/css")

func init() {
	filetype.AddMatcher(cssType, func(buf []byte) bool {
		return bytes.HasPrefix(buf, []byte(`@charset "`))
	})
}

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

func (e srcEncoding) String() string {
	switch e {
	case encUTF8:
		return "UTF-8"
	case encUTF16BigEndian:
		return "UTF-16BE"
	case encUTF16LittleEndian:
		return "UTF-16LE"
	case encUTF32BigEndian:
		return "UTF-32BE"
	case encUTF32LittleEndian:
		return "UTF-32LE"
	default:
		return "unknown"
	}
}

// headerSize is enough for both BOM and binary signature checks.
const headerSize = 262

func isUTF8BOM3(buf []byte) bool {
	return len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}

// detectUTF looks for byte order mark. UTF-32LE must be checked before
// UTF-16LE as they share first two bytes.
func detectUTF(buf []byte) srcEncoding {
	switch {
	case isUTF8BOM3(buf):
		return encUTF8
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	default:
		return encUnknown
	}
}

// selectReader wraps r with decoder producing UTF-8 and dropping BOM.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	switch enc {
	case encUTF8:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	case encUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF32BigEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder())
	case encUTF32LittleEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder())
	case encUnknown:
		return r
	default:
		// this should never happen
		panic("unsupported source encoding")
	}
}

func readHeader(r io.Reader) ([]byte, error) {
	buf := make([]byte, headerSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}

// isArchiveFile reports whether file has zip extension and zip signature.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}
	head, err := readHeader(f)
	if err != nil {
		return false, err
	}
	return filetype.Is(head, "zip"), nil
}

// isStylesheet decides by name and content header. Content must not be any
// known binary format, images renamed to .css are not stylesheets.
func isStylesheet(name string, head []byte) (bool, srcEncoding) {
	if !strings.EqualFold(filepath.Ext(name), ".css") {
		return false, encUnknown
	}
	enc := detectUTF(head)
	if enc == encUnknown && bytes.IndexByte(head, 0) >= 0 {
		return false, encUnknown
	}
	if enc == encUnknown {
		if kind, err := filetype.Match(head); err == nil && kind != filetype.Unknown && kind != cssType {
			return false, encUnknown
		}
	}
	return true, enc
}

func isStylesheetFile(path string) (bool, srcEncoding, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, encUnknown, err
	}
	defer f.Close()

	head, err := readHeader(f)
	if err != nil {
		return false, encUnknown, err
	}
	ok, enc := isStylesheet(path, head)
	return ok, enc, nil
}

func isStylesheetInArchive(f *zip.File) (bool, srcEncoding, error) {
	if !strings.EqualFold(filepath.Ext(f.Name), ".css") {
		return false, encUnknown, nil
	}
	r, err := f.Open()
	if err != nil {
		return false, encUnknown, err
	}
	defer r.Close()

	head, err := readHeader(r)
	if err != nil {
		return false, encUnknown, err
	}
	ok, enc := isStylesheet(f.Name, head)
	return ok, enc, nil
}
