package recttree

import "math"

// Constraint is what a parent imposes on a child's size along each axis.
// A nil field means "unconstrained on this axis, child decides"; a non-nil
// field pins that axis to the given value.
type Constraint struct {
	Width  *float64
	Height *float64
}

func ptr(v float64) *float64 { return &v }

// Fixed returns a constraint pinning both axes.
func Fixed(width, height float64) Constraint {
	return Constraint{Width: ptr(width), Height: ptr(height)}
}

// FixedWidth returns a constraint pinning only the width.
func FixedWidth(width float64) Constraint {
	return Constraint{Width: ptr(width)}
}

// FixedHeight returns a constraint pinning only the height.
func FixedHeight(height float64) Constraint {
	return Constraint{Height: ptr(height)}
}

// Flexible returns a constraint pinning neither axis.
func Flexible() Constraint {
	return Constraint{}
}

// constraintEqual reports whether a and b impose the same constraint. A NaN
// value on either side never compares equal to anything, itself included,
// so a constraint carrying NaN always registers as changed and forces a
// rebuild rather than being silently skipped.
func constraintEqual(a, b Constraint) bool {
	return floatPtrEqual(a.Width, b.Width) && floatPtrEqual(a.Height, b.Height)
}

func floatPtrEqual(a, b *float64) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if a == nil {
		return true
	}
	if math.IsNaN(*a) || math.IsNaN(*b) {
		return false
	}
	return *a == *b
}
