package series

import (
	"errors"
	"testing"
)

func TestNewMask(t *testing.T) {
	_, err := NewMask([]float64{1, 2}, []bool{true})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Expected ErrLengthMismatch, got %v", err)
	}

	m, err := NewMask([]float64{1, 2}, []bool{true, false})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m.Len() != 2 || !m.At(0) || m.At(1) {
		t.Errorf("Unexpected mask %v", m)
	}
}

func TestMaskLogic(t *testing.T) {
	a := MustMask(seq(4), []bool{true, true, false, false})
	b := MustMask(seq(4), []bool{true, false, true, false})

	tests := []struct {
		name     string
		result   Mask
		expected []bool
	}{
		{"and", a.And(b), []bool{true, false, false, false}},
		{"or", a.Or(b), []bool{true, true, true, false}},
		{"not", a.Not(), []bool{false, false, true, true}},
		{"eq", a.Eq(b), []bool{true, false, false, true}},
		{"ne", a.Ne(b), []bool{false, true, true, false}},
		{"eq bool", a.EqBool(false), []bool{false, false, true, true}},
		{"ne bool", a.NeBool(false), []bool{true, true, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := MustMask(seq(4), tt.expected)
			if !tt.result.Equals(expected) {
				t.Errorf("Expected %v, got %v", expected, tt.result)
			}
		})
	}
}

func TestMaskSelection(t *testing.T) {
	m := MustMask([]float64{1, 2, 2, 3}, []bool{true, false, true, false})

	if !m.ILoc(1, 3, 1).Equals(MustMask([]float64{2, 2}, []bool{false, true})) {
		t.Errorf("Unexpected ILoc result %v", m.ILoc(1, 3, 1))
	}
	if !m.ILocPositions([]int{3}).Equals(MustMask([]float64{3}, []bool{false})) {
		t.Errorf("Unexpected ILocPositions result %v", m.ILocPositions([]int{3}))
	}
	if !m.Loc(2).Equals(MustMask([]float64{2}, []bool{false})) {
		t.Errorf("Unexpected Loc result %v", m.Loc(2))
	}
	if m.LocLabel(2).Len() != 2 {
		t.Errorf("Expected 2 entries for label 2, got %d", m.LocLabel(2).Len())
	}
	if !m.Head(1).Equals(MustMask([]float64{1}, []bool{true})) {
		t.Errorf("Unexpected head %v", m.Head(1))
	}
	if !m.Tail(1).Equals(MustMask([]float64{3}, []bool{false})) {
		t.Errorf("Unexpected tail %v", m.Tail(1))
	}

	mp := m.ToMap()
	if len(mp) != 3 || mp[2] != false || mp[1] != true {
		t.Errorf("Unexpected map %v", mp)
	}
}

func TestMaskSeriesRoundTrip(t *testing.T) {
	for n := 0; n <= 4; n++ {
		for bits := 0; bits < 1<<n; bits++ {
			values := make([]bool, n)
			ones := make([]float64, n)
			for i := range values {
				if bits&(1<<i) != 0 {
					values[i] = true
					ones[i] = 1
				}
			}
			m := MustMask(seq(n), values)

			s := m.ToSeries()
			if !s.Equals(Must(seq(n), ones)) {
				t.Errorf("Expected series %v for %v, got %v", ones, values, s.Values())
			}
			if !s.ToMask().Equals(m) {
				t.Errorf("Expected round trip to give %v, got %v", values, s.ToMask().Values())
			}
		}
	}
}

func TestMaskAllAny(t *testing.T) {
	if !MustMask(seq(2), []bool{true, true}).All() {
		t.Error("Expected All to be true")
	}
	if MustMask(seq(2), []bool{true, false}).All() {
		t.Error("Expected All to be false")
	}
	if MustMask(seq(2), []bool{false, false}).Any() {
		t.Error("Expected Any to be false")
	}
	var empty Mask
	if !empty.All() || empty.Any() {
		t.Error("Unexpected All or Any on empty mask")
	}
}
