package environ

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v2"
)

var marshallers = map[string]MarshalFunc{
	"json":   jsonMarshal,
	"yaml":   yamlMarshal,
	"toml":   tomlMarshal,
	"dotenv": dotenvMarshal,
}

// Marshallers returns the sorted names of the available output formats
func Marshallers() []string {
	names := make([]string, 0, len(marshallers))
	for name := range marshallers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Marshal serializes m in the named format
func Marshal(format string, m map[string]string) ([]byte, error) {
	fn, ok := marshallers[format]
	if !ok {
		return nil, &unknownFormatError{format}
	}
	return fn(m)
}

// Write serializes m in the named format and writes it to w
func Write(w io.Writer, format string, m map[string]string) error {
	data, er := Marshal(format, m)
	if er != nil {
		return er
	}
	_, er = w.Write(data)
	return er
}

// Write serializes the variables held by this Environ in the named format and writes them to w
func (e *Environ) Write(w io.Writer, format string) error {
	return Write(w, format, e.Map())
}

func jsonMarshal(m map[string]string) ([]byte, error) {
	data, er := json.MarshalIndent(m, "", "  ")
	if er != nil {
		return nil, er
	}
	return append(data, '\n'), nil
}

func yamlMarshal(m map[string]string) ([]byte, error) {
	return yaml.Marshal(m)
}

func tomlMarshal(m map[string]string) ([]byte, error) {
	var b bytes.Buffer
	if er := toml.NewEncoder(&b).Encode(m); er != nil {
		return nil, er
	}
	return b.Bytes(), nil
}

func dotenvMarshal(m map[string]string) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b bytes.Buffer
	for _, k := range keys {
		v := m[k]
		// godotenv writes integers bare, which would turn 007 into 7
		if d, er := strconv.Atoi(v); er == nil && strconv.Itoa(d) != v {
			fmt.Fprintf(&b, "%s=%q\n", k, v)
			continue
		}
		line, er := godotenv.Marshal(map[string]string{k: v})
		if er != nil {
			return nil, er
		}
		b.WriteString(line + "\n")
	}
	return b.Bytes(), nil
}

func (e *unknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format %s", e.format)
}
