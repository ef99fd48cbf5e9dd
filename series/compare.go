package series

import "math"

// intTolerance is the tolerance of EqInt and NeInt.
const intTolerance = 1e-50

func (s Series) compare(other Series, cmp func(a, b float64) bool) Mask {
	if other.Len() != s.Len() {
		panic(ErrLengthMismatch)
	}
	values := make([]bool, s.Len())
	for i, v := range s.values {
		values[i] = cmp(v, other.values[i])
	}
	return Mask{index: cloneFloats(s.index), values: values}
}

func (s Series) compareScalar(cmp func(a float64) bool) Mask {
	values := make([]bool, s.Len())
	for i, v := range s.values {
		values[i] = cmp(v)
	}
	return Mask{index: cloneFloats(s.index), values: values}
}

// Eq compares values pairwise for equality. NaN is not equal to NaN.
func (s Series) Eq(other Series) Mask {
	return s.compare(other, func(a, b float64) bool { return a == b })
}

// Ne is the negation of Eq.
func (s Series) Ne(other Series) Mask {
	return s.compare(other, func(a, b float64) bool { return a != b })
}

// Gt reports pairwise whether s is greater than other.
func (s Series) Gt(other Series) Mask {
	return s.compare(other, func(a, b float64) bool { return a > b })
}

// Lt reports pairwise whether s is less than other.
func (s Series) Lt(other Series) Mask {
	return s.compare(other, func(a, b float64) bool { return a < b })
}

// GtScalar reports which values are greater than v.
func (s Series) GtScalar(v float64) Mask {
	return s.compareScalar(func(a float64) bool { return a > v })
}

// GeScalar reports which values are greater than or equal to v.
func (s Series) GeScalar(v float64) Mask {
	return s.compareScalar(func(a float64) bool { return a >= v })
}

// LeScalar reports which values are less than or equal to v.
func (s Series) LeScalar(v float64) Mask {
	return s.compareScalar(func(a float64) bool { return a <= v })
}

// LtScalar reports which values are less than v.
func (s Series) LtScalar(v float64) Mask {
	return s.compareScalar(func(a float64) bool { return a < v })
}

// EqInt reports which values equal v.
func (s Series) EqInt(v int) Mask {
	f := float64(v)
	return s.compareScalar(func(a float64) bool { return math.Abs(a-f) < intTolerance })
}

// NeInt is the negation of EqInt. NaN values are reported as not equal.
func (s Series) NeInt(v int) Mask {
	f := float64(v)
	return s.compareScalar(func(a float64) bool { return !(math.Abs(a-f) < intTolerance) })
}
