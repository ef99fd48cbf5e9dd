package series

import (
	"fmt"
	"strings"

	"github.com/sartorproj/goseries/numc"
)

// Mask is an index paired with boolean values of the same length. It is
// produced by comparisons on a Series and used to select values with Where.
type Mask struct {
	index  []float64
	values []bool
}

// NewMask creates a Mask from copies of index and values.
func NewMask(index []float64, values []bool) (Mask, error) {
	if len(index) != len(values) {
		return Mask{}, fmt.Errorf("%w: index has %d entries, values has %d",
			ErrLengthMismatch, len(index), len(values))
	}
	v := make([]bool, len(values))
	copy(v, values)
	return Mask{index: cloneFloats(index), values: v}, nil
}

// MustMask is like NewMask but panics if the lengths differ.
func MustMask(index []float64, values []bool) Mask {
	m, err := NewMask(index, values)
	if err != nil {
		panic(err)
	}
	return m
}

// Len returns the number of entries.
func (m Mask) Len() int {
	return len(m.index)
}

// Empty reports whether the Mask has no entries.
func (m Mask) Empty() bool {
	return len(m.index) == 0
}

// Index returns a copy of the index.
func (m Mask) Index() []float64 {
	return cloneFloats(m.index)
}

// Values returns a copy of the values.
func (m Mask) Values() []bool {
	v := make([]bool, len(m.values))
	copy(v, m.values)
	return v
}

func (m Mask) combine(other Mask, op func(a, b bool) bool) Mask {
	if other.Len() != m.Len() {
		panic(ErrLengthMismatch)
	}
	values := make([]bool, m.Len())
	for i, v := range m.values {
		values[i] = op(v, other.values[i])
	}
	return Mask{index: cloneFloats(m.index), values: values}
}

func (m Mask) apply(op func(a bool) bool) Mask {
	values := make([]bool, m.Len())
	for i, v := range m.values {
		values[i] = op(v)
	}
	return Mask{index: cloneFloats(m.index), values: values}
}

// And returns the pairwise conjunction.
func (m Mask) And(other Mask) Mask {
	return m.combine(other, func(a, b bool) bool { return a && b })
}

// Or returns the pairwise disjunction.
func (m Mask) Or(other Mask) Mask {
	return m.combine(other, func(a, b bool) bool { return a || b })
}

// Not negates every value.
func (m Mask) Not() Mask {
	return m.apply(func(a bool) bool { return !a })
}

// Eq compares values pairwise.
func (m Mask) Eq(other Mask) Mask {
	return m.combine(other, func(a, b bool) bool { return a == b })
}

// Ne is the negation of Eq.
func (m Mask) Ne(other Mask) Mask {
	return m.combine(other, func(a, b bool) bool { return a != b })
}

// EqBool reports which values equal b.
func (m Mask) EqBool(b bool) Mask {
	return m.apply(func(a bool) bool { return a == b })
}

// NeBool reports which values differ from b.
func (m Mask) NeBool(b bool) Mask {
	return m.apply(func(a bool) bool { return a != b })
}

// Equals reports whether both masks have the same index and values.
func (m Mask) Equals(other Mask) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i := range m.values {
		if m.values[i] != other.values[i] {
			return false
		}
	}
	return numc.EqualHandlingNaNs(m.index, other.index)
}

// All reports whether every value is true. An empty Mask returns true.
func (m Mask) All() bool {
	for _, v := range m.values {
		if !v {
			return false
		}
	}
	return true
}

// Any reports whether at least one value is true.
func (m Mask) Any() bool {
	for _, v := range m.values {
		if v {
			return true
		}
	}
	return false
}

func (m Mask) take(positions []int) Mask {
	return Mask{index: take(m.index, positions), values: take(m.values, positions)}
}

// ILoc selects entries by position. See Series.ILoc.
func (m Mask) ILoc(from, to, step int) Mask {
	return m.take(slicePositions(m.Len(), from, to, step))
}

// ILocPositions selects entries at the given positions.
func (m Mask) ILocPositions(positions []int) Mask {
	return m.take(positions)
}

// At returns the value at position i. It panics if i is out of range.
func (m Mask) At(i int) bool {
	return m.values[i]
}

// Loc selects the first entry matching each label.
func (m Mask) Loc(labels ...float64) Mask {
	return m.take(labelPositions(m.index, labels))
}

// LocLabel selects every entry whose index equals label.
func (m Mask) LocLabel(label float64) Mask {
	return m.take(matchPositions(m.index, label))
}

// Head returns the first n entries.
func (m Mask) Head(n int) Mask {
	return m.take(headPositions(m.Len(), n))
}

// Tail returns the last n entries.
func (m Mask) Tail(n int) Mask {
	return m.take(tailPositions(m.Len(), n))
}

// ToMap returns the Mask as an index to value map. The first entry of a
// repeated index value wins.
func (m Mask) ToMap() map[float64]bool {
	result := make(map[float64]bool, m.Len())
	for i, k := range m.index {
		if _, ok := result[k]; !ok {
			result[k] = m.values[i]
		}
	}
	return result
}

// ToSeries converts the Mask into a Series of ones and zeros.
func (m Mask) ToSeries() Series {
	values := make([]float64, m.Len())
	for i, v := range m.values {
		if v {
			values[i] = 1
		}
	}
	return Series{index: cloneFloats(m.index), values: values}
}

func (m Mask) String() string {
	var b strings.Builder
	b.WriteString("Mask:\nindex\tvalue\n")
	writeRows(&b, m.Len(), func(i int) string {
		return fmt.Sprintf("%g\t%t\n", m.index[i], m.values[i])
	})
	return b.String()
}
