package environ

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumoslabs/envflow/pkg/log"
)

// logTo sends the package logger output to a buffer for the duration of the test.
func logTo(t *testing.T, level string) *bytes.Buffer {
	var b bytes.Buffer
	prev := log.GetLogger()
	log.SetLogger(log.NewLogger(level, &b))
	t.Cleanup(func() { log.SetLogger(prev) })
	return &b
}

func TestIsStore(t *testing.T) {
	assert.Implements(t, (*Store)(nil), NewEnviron())
	assert.Implements(t, (*Store)(nil), NewProcessEnv())
}

func TestEnviron(t *testing.T) {
	e := NewEnvironFromSlice([]string{"A=1", "B=x=y", "BROKEN", "C="})
	assert.Equal(t, map[string]string{"A": "1", "B": "x=y", "C": ""}, e.Map())

	v, ok := e.Load("C")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = e.Load("BROKEN")
	assert.False(t, ok)

	assert.Equal(t, "1", e.Delete("A"))
	assert.Equal(t, 2, e.Len())
	assert.Equal(t, []string{"B=x=y", "C="}, e.Slice())
}

func TestProcessEnv(t *testing.T) {
	const key = "ENVIRON_TEST_PROCESS_ENV"
	defer os.Unsetenv(key)
	s := NewProcessEnv()

	_, ok := s.Load(key)
	assert.False(t, ok)

	s.Set(key, "value")
	assert.Equal(t, "value", os.Getenv(key))

	v, ok := s.Load(key)
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	assert.Equal(t, "value", s.Delete(key))
	_, ok = os.LookupEnv(key)
	assert.False(t, ok)
}

func TestProcessEnvInvalidKey(t *testing.T) {
	b := logTo(t, "debug")
	s := NewProcessEnv()

	s.Set("INVALID=KEY", "value")
	assert.Contains(t, b.String(), "Failed to set environment variable. key=INVALID=KEY")

	assert.Equal(t, "", s.Delete("INVALID=KEY"))
	_, ok := s.Load("INVALID=KEY")
	assert.False(t, ok)
}

type staticProvider map[string]string

func (p staticProvider) AddToEnviron(e *Environ) error {
	for k, v := range p {
		if _, ok := e.Load(k); !ok {
			e.Set(k, v)
		}
	}
	return nil
}

type failingProvider struct{}

func (failingProvider) AddToEnviron(e *Environ) error {
	e.Set("PARTIAL", "1")
	return errors.New("boom")
}

func TestPopulate(t *testing.T) {
	RegisterProvider("first", func() (Provider, error) { return staticProvider{"A": "first"}, nil })
	RegisterProvider("second", func() (Provider, error) { return staticProvider{"A": "second", "B": "second"}, nil })
	RegisterProvider("failing", func() (Provider, error) { return failingProvider{}, nil })
	RegisterProvider("broken", func() (Provider, error) { return nil, errors.New("cannot configure") })

	assert.Subset(t, Providers(), []string{"broken", "failing", "first", "second"})

	_, er := GetProvider("missing")
	require.Error(t, er)
	assert.Equal(t, "unregistered provider missing", er.Error())

	b := logTo(t, "warn")
	e := NewEnviron()
	e.Populate([]string{"missing", "broken", "first", "failing", "second"})
	assert.Equal(t, map[string]string{"A": "first", "B": "second", "PARTIAL": "1"}, e.Map())

	out := b.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "Failed to create provider. name=missing msg=unregistered provider missing")
	assert.Contains(t, out, "Failed to create provider. name=broken msg=cannot configure")
	assert.Contains(t, out, "Provider failed. name=failing msg=boom")
}
