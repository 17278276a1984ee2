package types

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSignature_Bounds(t *testing.T) {
	sig := Signature{String, Optional(Number), String, Undefined}
	required, total := sig.Bounds()
	if required != 2 || total != 4 {
		t.Errorf("Bounds() = (%d, %d), want (2, 4)", required, total)
	}
}

func TestSignature_JSON(t *testing.T) {
	sig := Signature{String, Optional(Number), ArrayOf(Boolean)}

	data, err := json.Marshal(sig)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `["String","Number?","[Boolean]"]` {
		t.Errorf("Marshal() = %s", data)
	}

	var decoded Signature
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(decoded) != 3 || Name(decoded[1]) != "Number or undefined or null" {
		t.Errorf("Unmarshal() = %v", decoded.Names())
	}
}

func TestSignature_JSONString(t *testing.T) {
	var sig Signature
	if err := json.Unmarshal([]byte(`"String, Number?"`), &sig); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(sig) != 2 {
		t.Errorf("Unmarshal() = %d slots, want 2", len(sig))
	}
}

func TestSignature_JSONErrors(t *testing.T) {
	var sig Signature
	if err := json.Unmarshal([]byte(`["String", "Nope"]`), &sig); err == nil {
		t.Error("Unmarshal() should reject unknown types")
	}
	if err := json.Unmarshal([]byte(`{"a": 1}`), &sig); err == nil {
		t.Error("Unmarshal() should reject objects")
	}
	if _, err := json.Marshal(Signature{ClassOf[Widget]()}); err == nil {
		t.Error("Marshal() should reject class references")
	}
	if _, err := json.Marshal(Signature{nil}); err == nil {
		t.Error("Marshal() should reject nil types")
	}
}

func TestSignature_YAML(t *testing.T) {
	var doc struct {
		Seq  Signature `yaml:"seq"`
		Flat Signature `yaml:"flat"`
	}
	input := `
seq:
  - String
  - "Number?"
flat: "String, [Number]"
`
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(doc.Seq) != 2 || !IsOptional(doc.Seq[1]) {
		t.Errorf("seq = %v", doc.Seq.Names())
	}
	if len(doc.Flat) != 2 || Name(doc.Flat[1]) != "Array<Number>" {
		t.Errorf("flat = %v", doc.Flat.Names())
	}

	out, err := yaml.Marshal(struct {
		Sig Signature `yaml:"sig"`
	}{Signature{String, Nullable(Number)}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != "sig:\n    - String\n    - Number|null\n" {
		t.Errorf("Marshal() = %q", out)
	}
}
