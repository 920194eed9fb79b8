package environ

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshallers(t *testing.T) {
	assert.Equal(t, []string{"dotenv", "json", "toml", "yaml"}, Marshallers())
}

func TestWrite(t *testing.T) {
	e := NewEnviron()
	e.Set("B", "two words")
	e.Set("A", "1")
	e.Set("ZIP", "007")

	tests := []struct {
		format, want string
	}{
		{"json", "{\n  \"A\": \"1\",\n  \"B\": \"two words\",\n  \"ZIP\": \"007\"\n}\n"},
		{"yaml", "A: \"1\"\nB: two words\nZIP: \"007\"\n"},
		{"toml", "A = \"1\"\nB = \"two words\"\nZIP = \"007\"\n"},
		{"dotenv", "A=1\nB=\"two words\"\nZIP=\"007\"\n"},
	}

	for _, tt := range tests {
		var b bytes.Buffer
		require.NoErrorf(t, e.Write(&b, tt.format), tt.format)
		assert.Equalf(t, tt.want, b.String(), tt.format)
	}

	var b bytes.Buffer
	er := e.Write(&b, "xml")
	require.Error(t, er)
	assert.Equal(t, "unknown output format xml", er.Error())
	assert.Equal(t, 0, b.Len())
}
