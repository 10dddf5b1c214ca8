package cli

import (
	"testing"
)

// TestValidateParamName tests the survey validator for variable names
func TestValidateParamName(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		wantErr bool
	}{
		{name: "plain name", input: "count"},
		{name: "padded name", input: "  x  "},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "not a string", input: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateParamName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateParamName(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestTypeOptions(t *testing.T) {
	opts := typeOptions()
	want := []string{"char", "int", "long", "str", promptDone}
	if len(opts) != len(want) {
		t.Fatalf("typeOptions() = %v, want %v", opts, want)
	}
	for i := range want {
		if opts[i] != want[i] {
			t.Errorf("typeOptions()[%d] = %q, want %q", i, opts[i], want[i])
		}
	}
}
