package series

// slicePositions resolves a Python style slice over n elements into
// positions. Negative offsets count from the end, to == 0 selects up to the
// start and out of range positions are clamped.
func slicePositions(n, from, to, step int) []int {
	if n == 0 || step == 0 || from == to {
		return nil
	}

	first := from
	if first < 0 {
		first = n + first
	}
	last := 0
	switch {
	case to < 0:
		last = n + to - 1
	case to > 0:
		last = to - 1
	}
	first = clampPosition(first, n)
	last = clampPosition(last, n)

	var positions []int
	if step > 0 {
		for i := first; i <= last; i += step {
			positions = append(positions, i)
		}
	} else {
		for i := first; i >= last; i += step {
			positions = append(positions, i)
		}
	}
	return positions
}

func clampPosition(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func take[T any](x []T, positions []int) []T {
	result := make([]T, 0, len(positions))
	for _, p := range positions {
		if p >= 0 && p < len(x) {
			result = append(result, x[p])
		}
	}
	return result
}

func labelPositions(index []float64, labels []float64) []int {
	var positions []int
	for _, label := range labels {
		for i, v := range index {
			if v == label {
				positions = append(positions, i)
				break
			}
		}
	}
	return positions
}

func matchPositions(index []float64, label float64) []int {
	var positions []int
	for i, v := range index {
		if v == label {
			positions = append(positions, i)
		}
	}
	return positions
}

func headPositions(n, k int) []int {
	if k > n {
		k = n
	}
	positions := make([]int, 0, max(k, 0))
	for i := 0; i < k; i++ {
		positions = append(positions, i)
	}
	return positions
}

func tailPositions(n, k int) []int {
	if k > n {
		k = n
	}
	positions := make([]int, 0, max(k, 0))
	for i := n - k; i < n; i++ {
		positions = append(positions, i)
	}
	return positions
}

// ILoc selects entries by position with Python slice semantics.
//
//	s.ILoc(0, 3, 1)   // positions 0, 1, 2
//	s.ILoc(-2, -1, 1) // the second to last entry
//	s.ILoc(-1, 0, -1) // every entry in reverse
func (s Series) ILoc(from, to, step int) Series {
	return s.take(slicePositions(s.Len(), from, to, step))
}

// ILocPositions selects entries at the given positions. Positions outside
// the Series are ignored.
func (s Series) ILocPositions(positions []int) Series {
	return s.take(positions)
}

// At returns the value at position i. It panics if i is out of range.
func (s Series) At(i int) float64 {
	return s.values[i]
}

// Loc selects the first entry matching each label. Labels not present in the
// index are skipped.
func (s Series) Loc(labels ...float64) Series {
	return s.take(labelPositions(s.index, labels))
}

// LocLabel selects every entry whose index equals label.
func (s Series) LocLabel(label float64) Series {
	return s.take(matchPositions(s.index, label))
}

// Head returns the first n entries.
func (s Series) Head(n int) Series {
	return s.take(headPositions(s.Len(), n))
}

// Tail returns the last n entries.
func (s Series) Tail(n int) Series {
	return s.take(tailPositions(s.Len(), n))
}

// Where keeps values where mask is true and uses the value of other at the
// same position elsewhere. Where panics if the lengths differ.
func (s Series) Where(mask Mask, other Series) Series {
	if mask.Len() != s.Len() || other.Len() != s.Len() {
		panic(ErrLengthMismatch)
	}
	result := make([]float64, s.Len())
	for i, keep := range mask.values {
		if keep {
			result[i] = s.values[i]
		} else {
			result[i] = other.values[i]
		}
	}
	return s.withValues(result)
}
