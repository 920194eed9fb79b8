package flow

import (
	"bytes"
	"errors"
	"strings"

	"github.com/joho/godotenv"
)

// unmarshal decodes dotenv data. Values are returned as written: every '$' is swapped for a private use
// rune absent from data while godotenv runs, so no variable reference is ever expanded.
func unmarshal(data []byte) (map[string]string, error) {
	dollar := standIn(data)
	restore := func(s string) string { return s }
	if dollar != "" {
		data = bytes.ReplaceAll(data, []byte("$"), []byte(dollar))
		restore = func(s string) string { return strings.ReplaceAll(s, dollar, "$") }
	}

	m, er := godotenv.UnmarshalBytes(data)
	if er != nil {
		return nil, errors.New(restore(er.Error()))
	}

	vars := make(map[string]string, len(m))
	for k, v := range m {
		// a key-less statement, like a last line without separator, decodes to an empty key
		if k == "" {
			continue
		}
		vars[k] = restore(v)
	}
	return vars, nil
}

func standIn(data []byte) string {
	if bytes.IndexByte(data, '$') < 0 {
		return ""
	}
	for r := rune(0xE000); r <= 0xF8FF; r++ {
		if !bytes.ContainsRune(data, r) {
			return string(r)
		}
	}
	return ""
}
