package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emilhart/crouton/internal/types"
)

func TestNew(t *testing.T) {
	s := New()

	assert.NotNil(t, s, "Styles should be initialized")
}

func TestStyles_ToastVariant(t *testing.T) {
	s := New()

	tests := []struct {
		name    string
		variant types.Variant
	}{
		{"Info returns ToastInfo style", types.VariantInfo},
		{"Error returns ToastError style", types.VariantError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := s.ToastVariant(tt.variant)
			assert.NotNil(t, style, "Style should not be nil")
		})
	}
}

// Exactly one variant treatment applies: error is red-toned, info is
// slate-toned, and the two never share a border color.
func TestStyles_VariantColors(t *testing.T) {
	s := New()

	errBorder := s.ToastVariant(types.VariantError).GetBorderTopForeground()
	infoBorder := s.ToastVariant(types.VariantInfo).GetBorderTopForeground()

	assert.Equal(t, Red, errBorder, "Error toasts should carry the red border")
	assert.Equal(t, Surface2, infoBorder, "Info toasts should carry the slate border")
	assert.NotEqual(t, errBorder, infoBorder)
}
