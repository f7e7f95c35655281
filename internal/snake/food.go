package snake

// spawnFood places food on a random free cell.
//
// Random cells are drawn until one misses the body, at most MaxSamples times.
// On a crowded grid that can take long, so after the budget runs out the free
// cells are collected and one is picked uniformly. NoFood is used when the
// body covers the whole grid.
func (g *Game) spawnFood() {
	n := g.cfg.Grid.TileCount

	for range g.cfg.Food.MaxSamples {
		p := Point{X: g.rng.Intn(n), Y: g.rng.Intn(n)}
		if !g.isSnakeAt(p) {
			g.food = p
			return
		}
	}

	occupied := make(map[Point]bool, len(g.body))
	for _, seg := range g.body {
		occupied[seg] = true
	}

	emptyCells := make([]Point, 0, n*n-len(occupied))
	for y := range n {
		for x := range n {
			p := Point{X: x, Y: y}
			if !occupied[p] {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		g.food = NoFood
		return
	}
	g.food = emptyCells[g.rng.Intn(len(emptyCells))]
}
