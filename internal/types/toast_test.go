package types

import "testing"

func TestVariant_String(t *testing.T) {
	tests := []struct {
		variant Variant
		want    string
	}{
		{VariantInfo, "info"},
		{VariantError, "error"},
	}

	for _, tt := range tests {
		if got := tt.variant.String(); got != tt.want {
			t.Errorf("Variant(%d).String() = %q, want %q", tt.variant, got, tt.want)
		}
	}
}
