package model

import "testing"

func TestAllowedTypes(t *testing.T) {
	got := AllowedTypes()
	want := []TypeTag{TypeChar, TypeInt, TypeLong, TypeStr}
	if len(got) != len(want) {
		t.Fatalf("AllowedTypes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllowedTypes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if s := AllowedTypesString(); s != "`char`, `int`, `long`, `str`" {
		t.Errorf("AllowedTypesString() = %q", s)
	}
}

func TestTypeTag(t *testing.T) {
	tests := []struct {
		tag     TypeTag
		valid   bool
		numeric bool
	}{
		{TypeInt, true, true},
		{TypeLong, true, true},
		{TypeChar, true, false},
		{TypeStr, true, false},
		{"foo", false, false},
		{"", false, false},
		{"Int", false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			if got := tt.tag.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
			if got := tt.tag.IsNumeric(); got != tt.numeric {
				t.Errorf("IsNumeric() = %v, want %v", got, tt.numeric)
			}
		})
	}
}

func TestNeedsStdlib(t *testing.T) {
	if NeedsStdlib(nil) {
		t.Error("no params should not need stdlib.h")
	}
	if NeedsStdlib([]Param{{TypeStr, "s"}, {TypeChar, "c"}}) {
		t.Error("str/char params should not need stdlib.h")
	}
	if !NeedsStdlib([]Param{{TypeStr, "s"}, {TypeLong, "n"}}) {
		t.Error("long param should need stdlib.h")
	}
}

func TestOptionsStrType(t *testing.T) {
	opts := DefaultOptions()
	if opts.StrType() != "str " {
		t.Errorf("StrType() = %q, want %q", opts.StrType(), "str ")
	}
	opts.TypedefStr = false
	if opts.StrType() != "char *" {
		t.Errorf("StrType() = %q, want %q", opts.StrType(), "char *")
	}
}

func TestParamString(t *testing.T) {
	p := Param{Type: TypeLong, Name: "count"}
	if got := p.String(); got != "long:count" {
		t.Errorf("String() = %q, want %q", got, "long:count")
	}
}
