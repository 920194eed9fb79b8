package flow

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is used when no encoding is given. Files are read as is.
const DefaultEncoding = "utf8"

// decoderFor returns the decoder for a named text encoding, or nil when no transcoding is needed.
// Besides the usual aliases, any WHATWG encoding label is accepted.
func decoderFor(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(name) {
	case "", DefaultEncoding, "utf-8":
		return nil, nil
	case "latin1", "binary":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "utf16le", "utf-16le", "ucs2", "ucs-2":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	}

	enc, er := htmlindex.Get(name)
	if er != nil {
		return nil, er
	}
	return enc.NewDecoder(), nil
}

func decode(data []byte, name string) ([]byte, error) {
	d, er := decoderFor(name)
	if er != nil || d == nil {
		return data, er
	}
	return d.Bytes(data)
}
