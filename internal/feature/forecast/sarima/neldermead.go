package sarima

import "sort"

// minimize runs a Nelder–Mead simplex search from the given starting point.
// The objective here is smooth inside the feasible region and heavily
// penalized outside it, so a derivative-free search is sufficient.
func minimize(f func([]float64) float64, start []float64) []float64 {
	const (
		step     = 0.25
		alpha    = 1.0 // reflection
		gamma    = 2.0 // expansion
		rho      = 0.5 // contraction
		sigma    = 0.5 // shrink
		maxIter  = 2000
		tolSpan  = 1e-10
	)
	dim := len(start)

	type vertex struct {
		p []float64
		v float64
	}
	eval := func(p []float64) vertex {
		return vertex{p: p, v: f(p)}
	}

	simplex := make([]vertex, dim+1)
	simplex[0] = eval(append([]float64(nil), start...))
	for i := 0; i < dim; i++ {
		p := append([]float64(nil), start...)
		p[i] += step
		simplex[i+1] = eval(p)
	}

	for iter := 0; iter < maxIter; iter++ {
		sort.Slice(simplex, func(i, j int) bool { return simplex[i].v < simplex[j].v })
		if simplex[dim].v-simplex[0].v < tolSpan {
			break
		}

		// Centroid of all vertices except the worst.
		centroid := make([]float64, dim)
		for _, vx := range simplex[:dim] {
			for i, c := range vx.p {
				centroid[i] += c / float64(dim)
			}
		}

		combine := func(factor float64) vertex {
			p := make([]float64, dim)
			for i := range p {
				p[i] = centroid[i] + factor*(centroid[i]-simplex[dim].p[i])
			}
			return eval(p)
		}

		reflected := combine(alpha)
		switch {
		case reflected.v < simplex[0].v:
			expanded := combine(gamma)
			if expanded.v < reflected.v {
				simplex[dim] = expanded
			} else {
				simplex[dim] = reflected
			}
		case reflected.v < simplex[dim-1].v:
			simplex[dim] = reflected
		default:
			contracted := combine(-rho)
			if contracted.v < simplex[dim].v {
				simplex[dim] = contracted
			} else {
				// Shrink toward the best vertex.
				for i := 1; i <= dim; i++ {
					p := make([]float64, dim)
					for j := range p {
						p[j] = simplex[0].p[j] + sigma*(simplex[i].p[j]-simplex[0].p[j])
					}
					simplex[i] = eval(p)
				}
			}
		}
	}

	sort.Slice(simplex, func(i, j int) bool { return simplex[i].v < simplex[j].v })
	return simplex[0].p
}
