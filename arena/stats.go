package arena

// Stats is a snapshot of arena counters.
type Stats struct {
	NumBlocks     int     // live blocks
	BytesInUse    int     // sum of payload sizes
	TotalAllocs   uint64  // cumulative Alloc count, kept across FreeAll
	TotalReallocs uint64  // cumulative Realloc count, kept across FreeAll
	Generation    uint32  // current generation
	AvgBlockSize  float64 // BytesInUse / NumBlocks, 0 when empty
}

// BytesInUse returns the total payload bytes held by live blocks.
func (a *Arena) BytesInUse() int {
	sum := 0
	for _, b := range a.blocks {
		sum += len(b.buf)
	}
	return sum
}

// Stats returns a snapshot of arena statistics.
func (a *Arena) Stats() Stats {
	s := Stats{
		NumBlocks:     len(a.blocks),
		BytesInUse:    a.BytesInUse(),
		TotalAllocs:   a.allocs,
		TotalReallocs: a.reallocs,
		Generation:    a.gen,
	}
	if s.NumBlocks > 0 {
		s.AvgBlockSize = float64(s.BytesInUse) / float64(s.NumBlocks)
	}
	return s
}
