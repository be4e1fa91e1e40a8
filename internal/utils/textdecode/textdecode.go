// Package textdecode turns uploaded statement bytes into text. Bank exchange
// files are usually produced in Windows-1251.
package textdecode

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode returns valid UTF-8 input unchanged (minus a BOM) and decodes
// anything else as Windows-1251.
func Decode(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(bytes.TrimPrefix(raw, utf8BOM)), nil
	}
	out, err := charmap.Windows1251.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode windows-1251 text: %w", err)
	}
	return string(out), nil
}
