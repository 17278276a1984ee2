package types

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		expr string
		want string // Name of the parsed type
	}{
		{"String", "String"},
		{"string", "String"},
		{"bool", "Boolean"},
		{"Number?", "Number or undefined or null"},
		{"[String]", "Array<String>"},
		{"[ String | Number ]", "Array<String or Number>"},
		{"String|null", "String or null"},
		{"(String|Number)?", "String or Number or undefined or null"},
		{"undefined", "undefined"},
		{"any", "Any"},
		{"[[Number]]", "Array<Array<Number>>"},
		{`enum(1, 2, "three", four)`, "Enum(1, 2, four, three)"},
		{"Function", "Function"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.expr, err)
			}
			if !IsValid(got) {
				t.Fatalf("Parse(%q) returned an invalid type", tt.expr)
			}
			if name := Name(got); name != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.expr, name, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, expr := range []string{"", "Strin", "[String", "String]", "String|", "enum(", `enum("a)`, "(Number", "String Number", "enum()"} {
		t.Run(expr, func(t *testing.T) {
			if _, err := Parse(expr); err == nil {
				t.Errorf("Parse(%q) should fail", expr)
			}
		})
	}
}

func TestParse_EnumValues(t *testing.T) {
	typ, err := Parse(`enum(1, "a", true)`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	for _, v := range []any{1, 1.0, "a", true} {
		if !IsOf(v, typ) {
			t.Errorf("IsOf(%v) = false, want true", v)
		}
	}
	for _, v := range []any{2, "b", false, nil} {
		if IsOf(v, typ) {
			t.Errorf("IsOf(%v) = true, want false", v)
		}
	}
}

func TestParseList(t *testing.T) {
	sig, err := ParseList(`String, enum(1,2)?, [Number|String], Number`)
	if err != nil {
		t.Fatalf("ParseList() error = %v", err)
	}
	want := []string{"String", "Enum(1, 2) or undefined or null", "Array<Number or String>", "Number"}
	got := sig.Names()
	if len(got) != len(want) {
		t.Fatalf("ParseList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d = %q, want %q", i, got[i], want[i])
		}
	}

	empty, err := ParseList("  ")
	if err != nil || len(empty) != 0 {
		t.Errorf("ParseList(blank) = %v, %v; want empty", empty, err)
	}

	if _, err := ParseList("String,,Number"); err == nil {
		t.Error("ParseList() should reject an empty slot")
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	types := []Type{
		String,
		Optional(Number),
		Nullable(String),
		ArrayOf(Optional(String)),
		Optional(Union{String, Number}),
		Union{Number, Undefined},
		Anything(),
		Any(),
		Enum(map[string]any{"a": "a", "1": 1.0}),
	}

	for _, typ := range types {
		text := Format(typ)
		t.Run(text, func(t *testing.T) {
			parsed, err := Parse(text)
			if err != nil {
				t.Fatalf("Parse(Format()) error = %v", err)
			}
			if Format(parsed) != text {
				t.Errorf("round trip = %q, want %q", Format(parsed), text)
			}
			if Name(parsed) != Name(typ) {
				t.Errorf("Name after round trip = %q, want %q", Name(parsed), Name(typ))
			}
		})
	}
}
