package xorshift

// Shuffle performs a Fisher-Yates shuffle over n elements using swap.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(g.Uint32() % uint32(i+1))
		swap(i, j)
	}
}

// Perm returns a shuffled permutation of the integers [0, n).
func (g *Generator) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	g.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	return p
}
