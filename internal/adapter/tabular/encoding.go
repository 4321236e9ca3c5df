package tabular

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// lookupEncoding resolves an encoding name to a decoder. A nil return with no
// error means the input is already UTF-8 and needs no decoding. Jurisdiction
// exports produced by older Windows tooling commonly arrive as Windows-1252.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "latin-1", "latin1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("unsupported input encoding %q", name)
	}
}
