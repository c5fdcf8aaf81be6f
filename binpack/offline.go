package binpack

import (
	"cmp"
	"slices"
)

// FirstFitDecreasing packs the entire item collection largest-first using
// the FirstFit rule, opening a new bin from newBin whenever no existing bin
// fits. The items slice is drained: it is empty when the call returns.
func FirstFitDecreasing[B Bin[I], I Item](bins *[]B, items *[]I, newBin func() B) {
	packDecreasing(FirstFit[B, I], bins, items, newBin)
}

// BestFitDecreasing packs the entire item collection largest-first using
// the BestFit rule, opening a new bin from newBin whenever no existing bin
// fits. The items slice is drained.
func BestFitDecreasing[B Bin[I], I Item](bins *[]B, items *[]I, newBin func() B) {
	packDecreasing(BestFit[B, I], bins, items, newBin)
}

func packDecreasing[B Bin[I], I Item](strategy Strategy[B, I], bins *[]B, items *[]I, newBin func() B) {
	sortDecreasing(*items)
	PackBins(strategy, bins, *items, newBin)
	*items = (*items)[:0]
}

// ModifiedFirstFitDecreasing is a refinement of FirstFitDecreasing that
// improves the worst-case bin count when item sizes exceed half the bin
// capacity. Items are classified into four tiers relative to the capacity C
// of a bin produced by newBin: large (size > C/2), medium (C/3 < size <=
// C/2), small (C/6 < size <= C/3), and tiny (size <= C/6).
//
// Large items are seeded into bins first, one forward cursor pass with a
// new bin per leftover item. Each bin then receives the largest medium item
// that fits. Small items are paired into bins in reverse order: the
// smallest remaining small item followed by the largest one that still
// fits. A forward greedy pass tops every bin off with the largest fitting
// medium, small, and tiny items, and whatever survives is packed with
// FirstFitDecreasing. The items slice is drained.
func ModifiedFirstFitDecreasing[B Bin[I], I Item](bins *[]B, items *[]I, newBin func() B) {
	capacity := newBin().Capacity()

	var large, medium, small, tiny []I
	for _, item := range *items {
		switch s := item.Size(); {
		case s > capacity/2:
			large = append(large, item)
		case s > capacity/3:
			medium = append(medium, item)
		case s > capacity/6:
			small = append(small, item)
		default:
			tiny = append(tiny, item)
		}
	}
	*items = (*items)[:0]

	// Seed all large items into separate bins, walking the bin list with a
	// forward cursor that never revisits a bin.
	sortDecreasing(large)
	idx := 0
	for _, item := range large {
		for {
			if idx == len(*bins) {
				bin := newBin()
				bin.Pack(item)
				*bins = append(*bins, bin)
				break
			}
			if item.Size() < (*bins)[idx].Available() {
				(*bins)[idx].Pack(item)
				break
			}
			idx++
		}
	}

	// Give each bin the largest remaining medium item that fits.
	sortDecreasing(medium)
	for _, bin := range *bins {
		if i := indexFitting(medium, bin.Available()); i >= 0 {
			bin.Pack(medium[i])
			medium = slices.Delete(medium, i, i+1)
			if len(medium) == 0 {
				break
			}
		}
	}

	// Pair small items into bins going backwards: the smallest remaining
	// item, then the largest one that still fits. Bins whose availability
	// cannot hold the two smallest remaining items are skipped.
	sortDecreasing(small)
	for bi := len(*bins) - 1; bi >= 0; bi-- {
		if len(small) == 0 {
			break
		}
		bin := (*bins)[bi]
		if smallestPairSum(small) > bin.Available() {
			continue
		}
		bin.Pack(small[len(small)-1])
		small = small[:len(small)-1]
		if i := indexFitting(small, bin.Available()); i >= 0 {
			bin.Pack(small[i])
			small = slices.Delete(small, i, i+1)
		}
	}

	// Greedy top-off: per bin, exhaust the largest fitting medium items,
	// then small, then tiny.
	sortDecreasing(tiny)
	for _, bin := range *bins {
		for len(medium) > 0 && medium[0].Size() <= bin.Available() {
			bin.Pack(medium[0])
			medium = medium[1:]
		}
		for len(small) > 0 && small[0].Size() <= bin.Available() {
			bin.Pack(small[0])
			small = small[1:]
		}
		for len(tiny) > 0 && tiny[0].Size() <= bin.Available() {
			bin.Pack(tiny[0])
			tiny = tiny[1:]
		}
	}

	// Everything that survived the tier passes is packed with FFD, which
	// guarantees completeness.
	remainder := slices.Concat(medium, small, tiny)
	FirstFitDecreasing(bins, &remainder, newBin)
}

func sortDecreasing[I Item](items []I) {
	slices.SortFunc(items, func(a, b I) int {
		return cmp.Compare(b.Size(), a.Size())
	})
}

// indexFitting returns the index of the first item no larger than room, or
// -1 if none fits. On a slice sorted in decreasing order this locates the
// largest fitting item.
func indexFitting[I Item](items []I, room int) int {
	for i, item := range items {
		if item.Size() <= room {
			return i
		}
	}
	return -1
}

// smallestPairSum returns the combined size of the up to two smallest items
// of a slice sorted in decreasing order.
func smallestPairSum[I Item](items []I) int {
	sum := 0
	for i := len(items) - 1; i >= 0 && i >= len(items)-2; i-- {
		sum += items[i].Size()
	}
	return sum
}
