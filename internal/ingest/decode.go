package ingest

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// utf8BOM is stripped before decoding; some bank exports carry it.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// singleByteCharmaps are tried in order when the file is not valid UTF-8.
// Windows-1252 leaves a handful of bytes undefined so it can reject a
// file; ISO-8859-1 accepts every byte and acts as the total fallback.
var singleByteCharmaps = []*charmap.Charmap{
	charmap.Windows1252,
	charmap.ISO8859_1,
}

// DecodeText decodes raw file bytes to a UTF-8 string, trying UTF-8 first
// and then the single-byte charmaps in order. The first clean decoding
// wins. Failure here is fatal for the file, never for the batch.
func DecodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if utf8.Valid(data) {
		return string(data), nil
	}

	for _, cm := range singleByteCharmaps {
		out, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		// The charmap decoders substitute undefined bytes rather than
		// erroring; a substitution means this charmap did not fit.
		if strings.ContainsRune(string(out), utf8.RuneError) {
			continue
		}
		return string(out), nil
	}
	return "", fmt.Errorf("file is not valid UTF-8, Windows-1252, or ISO-8859-1 text")
}
