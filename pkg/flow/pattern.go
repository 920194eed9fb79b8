package flow

import (
	"strings"
	"unicode"
)

// DefaultPattern is the naming convention used when no pattern is given.
const DefaultPattern = ".env[.node_env][.local]"

// DefaultsFilename is the legacy lowest priority layer, listed for DefaultPattern only.
const DefaultsFilename = ".env.defaults"

const (
	localToken   = "local"
	nodeEnvToken = "node_env"
)

type spanKind int

const (
	literalSpan spanKind = iota
	localSpan
	nodeEnvSpan
)

// span is one piece of a compiled pattern. For placeholder spans, prefix and suffix hold the
// non-word characters written inside the brackets around the token.
type span struct {
	kind           spanKind
	text           string
	prefix, suffix string
}

// Pattern is a compiled naming convention such as ".env[.node_env][.local]".
type Pattern struct {
	raw   string
	spans []span
}

// ParsePattern compiles a naming convention. Bracket groups must hold exactly one of the
// "local" or "node_env" tokens, optionally surrounded by non-word characters.
func ParsePattern(s string) (*Pattern, error) {
	p := &Pattern{raw: s}

	var lit strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ']':
			return nil, &PatternError{Pattern: s, Pos: i, Msg: "unexpected ']'"}
		case '[':
			end := strings.IndexAny(s[i+1:], "[]")
			if end < 0 || s[i+1+end] == '[' {
				return nil, &PatternError{Pattern: s, Pos: i, Msg: "unterminated '['"}
			}
			sp, ok := placeholder(s[i+1 : i+1+end])
			if !ok {
				return nil, &PatternError{Pattern: s, Pos: i, Msg: "unknown placeholder " + s[i:i+2+end]}
			}
			if lit.Len() > 0 {
				p.spans = append(p.spans, span{kind: literalSpan, text: lit.String()})
				lit.Reset()
			}
			p.spans = append(p.spans, sp)
			i += end + 1
		default:
			lit.WriteByte(s[i])
		}
	}
	if lit.Len() > 0 {
		p.spans = append(p.spans, span{kind: literalSpan, text: lit.String()})
	}
	return p, nil
}

// MustParsePattern is like ParsePattern but panics if the pattern is malformed.
func MustParsePattern(s string) *Pattern {
	p, er := ParsePattern(s)
	if er != nil {
		panic(er)
	}
	return p
}

func placeholder(inner string) (span, bool) {
	token := strings.TrimFunc(inner, isNonWord)
	start := strings.Index(inner, token)
	if token == "" || start < 0 {
		return span{}, false
	}
	sp := span{prefix: inner[:start], suffix: inner[start+len(token):]}
	switch token {
	case localToken:
		sp.kind = localSpan
	case nodeEnvToken:
		sp.kind = nodeEnvSpan
	default:
		return span{}, false
	}
	return sp, true
}

func isNonWord(r rune) bool {
	return !(r == '_' || r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)))
}

// String returns the pattern as written.
func (p *Pattern) String() string { return p.raw }

// HasLocal reports whether the pattern has a "local" placeholder.
func (p *Pattern) HasLocal() bool { return p.has(localSpan) }

// HasNodeEnv reports whether the pattern has a "node_env" placeholder.
func (p *Pattern) HasNodeEnv() bool { return p.has(nodeEnvSpan) }

func (p *Pattern) has(kind spanKind) bool {
	for _, sp := range p.spans {
		if sp.kind == kind {
			return true
		}
	}
	return false
}

// Compose returns the filename for one layer. Local placeholders are kept without their brackets
// when local is true and dropped otherwise. Node_env placeholders are dropped when nodeEnv is empty,
// otherwise the token is replaced with nodeEnv.
func (p *Pattern) Compose(local bool, nodeEnv string) string {
	var b strings.Builder
	for _, sp := range p.spans {
		switch sp.kind {
		case literalSpan:
			b.WriteString(sp.text)
		case localSpan:
			if local {
				b.WriteString(sp.prefix + localToken + sp.suffix)
			}
		case nodeEnvSpan:
			if nodeEnv != "" {
				b.WriteString(sp.prefix + nodeEnv + sp.suffix)
			}
		}
	}
	return b.String()
}

// Describe returns the pattern with the node_env token replaced by nodeEnv inside its brackets,
// e.g. ".env[.development][.local]". With an empty nodeEnv the pattern is returned as written.
func (p *Pattern) Describe(nodeEnv string) string {
	if nodeEnv == "" {
		return p.raw
	}
	var b strings.Builder
	for _, sp := range p.spans {
		switch sp.kind {
		case literalSpan:
			b.WriteString(sp.text)
		case localSpan:
			b.WriteString("[" + sp.prefix + localToken + sp.suffix + "]")
		case nodeEnvSpan:
			b.WriteString("[" + sp.prefix + nodeEnv + sp.suffix + "]")
		}
	}
	return b.String()
}

// ComposeFilename compiles pattern and composes the filename for the given layer flags.
func ComposeFilename(pattern string, local bool, nodeEnv string) (string, error) {
	p, er := ParsePattern(pattern)
	if er != nil {
		return "", er
	}
	return p.Compose(local, nodeEnv), nil
}
