package binpack

// Strategy is an online packing rule: given the current bins and a single
// item, it selects the index of the bin the item should join and reports
// true, or reports false when no existing bin can accept the item.
// Strategies are deterministic and never mutate bins.
type Strategy[B Bin[I], I Item] func(bins []B, item I) (int, bool)

// PackBins packs every item into bins using the given online strategy,
// appending a fresh bin from newBin whenever no existing bin fits. The bin
// collection only grows, so every item ends up packed.
func PackBins[B Bin[I], I Item](strategy Strategy[B, I], bins *[]B, items []I, newBin func() B) {
	for _, item := range items {
		if i, ok := strategy(*bins, item); ok {
			(*bins)[i].Pack(item)
			continue
		}
		bin := newBin()
		bin.Pack(item)
		*bins = append(*bins, bin)
	}
}

// PackExistingBins packs items into a closed bin set using the given online
// strategy, stopping at the first item no bin can accept. It returns the
// number of items packed; a value smaller than len(items) means the
// remaining items were left over, which callers must handle themselves.
func PackExistingBins[B Bin[I], I Item](strategy Strategy[B, I], bins []B, items []I) int {
	for n, item := range items {
		i, ok := strategy(bins, item)
		if !ok {
			return n
		}
		bins[i].Pack(item)
	}
	return len(items)
}

// FirstFit selects the first bin with enough available capacity.
func FirstFit[B Bin[I], I Item](bins []B, item I) (int, bool) {
	for i, bin := range bins {
		if item.Size() <= bin.Available() {
			return i, true
		}
	}
	return 0, false
}

// NextFit only considers the last bin; earlier bins are never revisited.
func NextFit[B Bin[I], I Item](bins []B, item I) (int, bool) {
	if last := len(bins) - 1; last >= 0 && item.Size() <= bins[last].Available() {
		return last, true
	}
	return 0, false
}

// BestFit selects the fitting bin with the least available capacity. Ties
// are broken in favour of the lowest index.
func BestFit[B Bin[I], I Item](bins []B, item I) (int, bool) {
	best := -1
	for i, bin := range bins {
		if item.Size() > bin.Available() {
			continue
		}
		if best < 0 || bin.Available() < bins[best].Available() {
			best = i
		}
	}
	return best, best >= 0
}

// WorstFit selects the fitting bin with the most available capacity. Ties
// are broken in favour of the lowest index.
func WorstFit[B Bin[I], I Item](bins []B, item I) (int, bool) {
	worst := -1
	for i, bin := range bins {
		if item.Size() > bin.Available() {
			continue
		}
		if worst < 0 || bin.Available() > bins[worst].Available() {
			worst = i
		}
	}
	return worst, worst >= 0
}

// AlmostWorstFit selects the fitting bin with the second-most available
// capacity. With fewer than two candidate bins it behaves like WorstFit.
func AlmostWorstFit[B Bin[I], I Item](bins []B, item I) (int, bool) {
	worst, second := -1, -1
	for i, bin := range bins {
		if item.Size() > bin.Available() {
			continue
		}
		switch {
		case worst < 0:
			worst = i
		case bin.Available() > bins[worst].Available():
			second = worst
			worst = i
		case second < 0 || bin.Available() > bins[second].Available():
			second = i
		}
	}
	if second >= 0 {
		return second, true
	}
	return worst, worst >= 0
}
