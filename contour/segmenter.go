package contour

// Partition splits a waveform of the given length into count contiguous
// half-open spans. Every span has width length/count except the last, whose
// end is forced to length so the spans tile [0, length) exactly, with no gap
// or overlap. When length < count the integer width collapses to zero and
// all spans but the last are empty; callers must treat empty spans as
// yielding an undetermined pitch.
func Partition(length, count int) []Span {
	if count <= 0 {
		return nil
	}

	width := length / count
	spans := make([]Span, count)

	for i := 0; i < count; i++ {
		start := i * width
		end := start + width
		if i == count-1 {
			end = length
		}
		spans[i] = Span{Start: start, End: end}
	}

	return spans
}
