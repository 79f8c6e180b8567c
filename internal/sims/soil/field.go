package soil

// field is one double-buffered scalar layer. Every value in curr lies in
// [0, max]; next is scratch space owned by whichever pass is running.
type field struct {
	curr []float32
	next []float32
	max  float32
}

func newField(cells int, max float32) field {
	return field{
		curr: make([]float32, cells),
		next: make([]float32, cells),
		max:  max,
	}
}

func (f *field) get(idx int) float32 { return f.curr[idx] }

// setClamped writes straight into the settled buffer.
func (f *field) setClamped(idx int, v float32) {
	f.curr[idx] = clampValue(v, f.max)
}

// setNext writes into the pending buffer of the running pass.
func (f *field) setNext(idx int, v float32) {
	f.next[idx] = clampValue(v, f.max)
}

// swap publishes next as the new settled state.
func (f *field) swap() {
	f.curr, f.next = f.next, f.curr
}

func (f *field) fill(v float32) {
	v = clampValue(v, f.max)
	for i := range f.curr {
		f.curr[i] = v
		f.next[i] = v
	}
}

func (f *field) sum() float64 {
	var total float64
	for _, v := range f.curr {
		total += float64(v)
	}
	return total
}

// clampValue maps NaN and negatives to zero and caps at max.
func clampValue(v, max float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
