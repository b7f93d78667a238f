package sort

// Counter wraps a Sorter and counts the comparisons and swaps made on it.
type Counter struct {
	Data        Sorter
	Comparisons int
	Swaps       int
}

func (c *Counter) Len() int { return c.Data.Len() }

func (c *Counter) Less(i, j int) bool {
	c.Comparisons++
	return c.Data.Less(i, j)
}

func (c *Counter) Swap(i, j int) {
	c.Swaps++
	c.Data.Swap(i, j)
}

// Reset zeroes both counters.
func (c *Counter) Reset() {
	c.Comparisons, c.Swaps = 0, 0
}
