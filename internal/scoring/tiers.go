package scoring

// tier awards Points when the value passes Bound
type tier struct {
	Bound  float64
	Points float64
}

// tiersAbove returns the points of the first tier whose bound the value exceeds (strict >)
func tiersAbove(value float64, tiers []tier) float64 {
	for _, t := range tiers {
		if value > t.Bound {
			return t.Points
		}
	}
	return 0
}

// tiersBelow returns the points of the first tier whose bound the value is under (strict <)
func tiersBelow(value float64, tiers []tier) float64 {
	for _, t := range tiers {
		if value < t.Bound {
			return t.Points
		}
	}
	return 0
}

// category accumulates earned points against the points that were possible
type category struct {
	earned   float64
	possible float64
}

// add scores one present metric
func (c *category) add(points, allotment float64) {
	c.earned += points
	c.possible += allotment
}

// scale rescales earned/possible to the cap; no available metric yields half credit
func (c category) scale(limit float64) float64 {
	if c.possible == 0 {
		return limit / 2
	}
	return c.earned / c.possible * limit
}
