package alloc

// SizeInUse returns the number of elements handed out since the last
// Reset.
func (a *Arena[T]) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += c.offset
	}
	return sum
}

// NumChunks returns the number of chunks owned by the arena.
func (a *Arena[T]) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total number of elements in all chunks.
func (a *Arena[T]) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns SizeInUse/Capacity, or 0 for an arena with no
// chunks.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkLen returns the default chunk length of the arena.
func (a *Arena[T]) ChunkLen() int {
	return a.chunkLen
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkLen:    a.chunkLen,
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistics about an arena, counted in elements.
type ArenaMetrics struct {
	SizeInUse   int     // Elements currently handed out
	Capacity    int     // Total elements in all chunks
	NumChunks   int     // Number of chunks
	ChunkLen    int     // Default chunk length
	Utilization float64 // SizeInUse / Capacity
}
