package types

// Variant indicates the visual treatment of a toast. It affects styling
// only, never timing or dismissal behavior.
type Variant int

const (
	VariantInfo Variant = iota
	VariantError
)

// String returns the variant name as used in flags and config files.
func (v Variant) String() string {
	switch v {
	case VariantError:
		return "error"
	default:
		return "info"
	}
}
