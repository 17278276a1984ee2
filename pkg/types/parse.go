package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// Parse converts a type expression into a Type.
//
// Grammar:
//
//	expr    := postfix ( "|" postfix )*
//	postfix := primary "?"*
//	primary := name | "[" expr "]" | "(" expr ")" | "enum(" literal ( "," literal )* ")"
//	name    := String | Number | Boolean | Object | Function | Any | null | undefined
//
// Names are case-insensitive and "bool" is accepted for Boolean. "T?" is
// Optional(T). Enum literals are JSON values or bare words (read as strings);
// each is keyed by its source text.
func Parse(expr string) (Type, error) {
	p := &parser{src: expr}
	t, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, fmt.Errorf("unexpected %q at offset %d in %q", p.src[p.pos:], p.pos, expr)
	}
	return t, nil
}

// ParseList parses a comma separated list of type expressions, such as
// "String, Number?, String". Commas nested in brackets, parentheses or
// quotes do not split.
func ParseList(list string) (Signature, error) {
	if strings.TrimSpace(list) == "" {
		return Signature{}, nil
	}
	var sig Signature
	for i, part := range splitTopLevel(list) {
		t, err := Parse(part)
		if err != nil {
			return nil, fmt.Errorf("type %d: %w", i, err)
		}
		sig = append(sig, t)
	}
	return sig, nil
}

// Format renders t in the grammar accepted by Parse. Class references have
// no textual form and render as their Go type name.
func Format(t Type) string {
	switch t := t.(type) {
	case Primitive, AnyType:
		return Name(t)
	case nullType:
		return "null"
	case undefinedType:
		return "undefined"
	case Union:
		if inner, ok := optionalOf(t); ok {
			s := Format(inner)
			if _, isUnion := inner.(Union); isUnion {
				s = "(" + s + ")"
			}
			return s + "?"
		}
		parts := make([]string, len(t))
		for i, member := range t {
			parts[i] = Format(member)
		}
		return strings.Join(parts, "|")
	case *ArrayOfType:
		if t == nil {
			return "invalid"
		}
		return "[" + Format(t.Elem) + "]"
	case *EnumType:
		if t == nil || t.Values == nil {
			return "invalid"
		}
		keys := enumKeys(t)
		parts := make([]string, len(keys))
		for i, k := range keys {
			raw, err := json.Marshal(t.Values[k])
			if err != nil {
				raw = []byte(fmt.Sprint(t.Values[k]))
			}
			parts[i] = string(raw)
		}
		return "enum(" + strings.Join(parts, ",") + ")"
	case *ClassType:
		return Name(t)
	default:
		return "invalid"
	}
}

// optionalOf recognizes the shape produced by Optional.
func optionalOf(u Union) (Type, bool) {
	if len(u) != 3 {
		return nil, false
	}
	if _, ok := u[1].(undefinedType); !ok {
		return nil, false
	}
	if _, ok := u[2].(nullType); !ok {
		return nil, false
	}
	return u[0], true
}

var namedTypes = map[string]Type{
	"string":    String,
	"number":    Number,
	"boolean":   Boolean,
	"bool":      Boolean,
	"object":    Object,
	"function":  Function,
	"any":       AnyType{},
	"null":      Null,
	"undefined": Undefined,
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.peek() != c {
		if p.eof() {
			return fmt.Errorf("expected %q at end of %q", c, p.src)
		}
		return fmt.Errorf("expected %q at offset %d in %q", c, p.pos, p.src)
	}
	p.pos++
	return nil
}

func (p *parser) parseUnion() (Type, error) {
	first, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	members := Union{first}
	for {
		p.skipSpace()
		if p.peek() != '|' {
			break
		}
		p.pos++
		next, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		members = append(members, next)
	}
	if len(members) == 1 {
		return first, nil
	}
	return members, nil
}

func (p *parser) parsePostfix() (Type, error) {
	t, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if p.peek() != '?' {
			return t, nil
		}
		p.pos++
		t = Optional(t)
	}
}

func (p *parser) parsePrimary() (Type, error) {
	p.skipSpace()
	switch c := p.peek(); {
	case c == 0:
		return nil, fmt.Errorf("unexpected end of %q", p.src)
	case c == '[':
		p.pos++
		elem, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		return ArrayOf(elem), nil
	case c == '(':
		p.pos++
		inner, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return inner, nil
	case isIdentByte(c):
		word := p.ident()
		if strings.EqualFold(word, "enum") {
			return p.parseEnum()
		}
		t, ok := namedTypes[strings.ToLower(word)]
		if !ok {
			return nil, fmt.Errorf("unsupported type: %s", word)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unexpected %q at offset %d in %q", c, p.pos, p.src)
	}
}

func (p *parser) parseEnum() (Type, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	values := make(map[string]any)
	for {
		p.skipSpace()
		start := p.pos
		if err := p.skipLiteral(); err != nil {
			return nil, err
		}
		raw := strings.TrimSpace(p.src[start:p.pos])
		if raw == "" {
			return nil, fmt.Errorf("empty enum member at offset %d in %q", start, p.src)
		}
		key, value := enumMember(raw)
		values[key] = value
		p.skipSpace()
		if p.peek() == ',' {
			p.pos++
			continue
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return Enum(values), nil
	}
}

// skipLiteral advances over one enum member, honouring quoted strings.
func (p *parser) skipLiteral() error {
	if p.peek() == '"' {
		p.pos++
		for !p.eof() {
			switch p.src[p.pos] {
			case '\\':
				p.pos += 2
				continue
			case '"':
				p.pos++
				return nil
			}
			p.pos++
		}
		return fmt.Errorf("unterminated string in %q", p.src)
	}
	for !p.eof() && p.peek() != ',' && p.peek() != ')' {
		p.pos++
	}
	return nil
}

func enumMember(raw string) (string, any) {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return raw, raw
	}
	if s, ok := value.(string); ok {
		return s, s
	}
	return raw, value
}

func (p *parser) ident() string {
	start := p.pos
	for !p.eof() && isIdentByte(p.peek()) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func splitTopLevel(list string) []string {
	var parts []string
	depth, start := 0, 0
	inString := false
	for i := 0; i < len(list); i++ {
		c := list[i]
		switch {
		case inString:
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '[' || c == '(':
			depth++
		case c == ']' || c == ')':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, strings.TrimSpace(list[start:i]))
			start = i + 1
		}
	}
	return append(parts, strings.TrimSpace(list[start:]))
}
