package kata

// Concat joins seqs in argument order. With no arguments it returns an empty slice.
func Concat[T any](seqs ...[]T) []T {
	n := 0
	for _, s := range seqs {
		n += len(s)
	}
	out := make([]T, 0, n)
	for _, s := range seqs {
		out = append(out, s...)
	}
	return out
}
