package packer

import (
	"fmt"
	"slices"

	"github.com/eugenenazirov/bin-packer/binpack"
)

// item adapts a plain size to the binpack.Item contract.
type item int

func (i item) Size() int { return int(i) }

// bin is the concrete container handed to the packing algorithms. It keeps
// the packed sizes so results can report per-bin contents.
type bin struct {
	capacity int
	items    []int
	used     int
}

func (b *bin) Capacity() int  { return b.capacity }
func (b *bin) Available() int { return b.capacity - b.used }

func (b *bin) Pack(it item) {
	b.used += it.Size()
	b.items = append(b.items, it.Size())
}

type heuristicPacker struct{}

// New creates a Packer backed by the binpack heuristics.
func New() Packer {
	return &heuristicPacker{}
}

func (p *heuristicPacker) PackItems(sizes []int, capacity int, strategy Strategy) (Result, error) {
	if capacity <= 0 {
		return Result{}, ErrInvalidCapacity
	}

	items := make([]item, 0, len(sizes))
	for _, size := range sizes {
		if size < 0 {
			return Result{}, fmt.Errorf("%w: got %d", ErrInvalidSizes, size)
		}
		// The library treats oversized items as a caller contract
		// violation, so they are rejected up front.
		if size > capacity {
			return Result{}, fmt.Errorf("%w: item of size %d with capacity %d", ErrItemTooLarge, size, capacity)
		}
		items = append(items, item(size))
	}

	newBin := func() *bin { return &bin{capacity: capacity} }
	var bins []*bin

	switch strategy {
	case FirstFit:
		binpack.PackBins(binpack.FirstFit[*bin, item], &bins, items, newBin)
	case NextFit:
		binpack.PackBins(binpack.NextFit[*bin, item], &bins, items, newBin)
	case BestFit:
		binpack.PackBins(binpack.BestFit[*bin, item], &bins, items, newBin)
	case WorstFit:
		binpack.PackBins(binpack.WorstFit[*bin, item], &bins, items, newBin)
	case AlmostWorstFit:
		binpack.PackBins(binpack.AlmostWorstFit[*bin, item], &bins, items, newBin)
	case FirstFitDecreasing:
		binpack.FirstFitDecreasing(&bins, &items, newBin)
	case BestFitDecreasing:
		binpack.BestFitDecreasing(&bins, &items, newBin)
	case ModifiedFirstFitDecreasing:
		binpack.ModifiedFirstFitDecreasing(&bins, &items, newBin)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	result := Result{
		Bins:     make([]BinResult, 0, len(bins)),
		BinCount: len(bins),
	}
	for _, b := range bins {
		result.Bins = append(result.Bins, BinResult{
			Items:     slices.Clone(b.items),
			Used:      b.used,
			Available: b.Available(),
		})
		result.TotalItems += len(b.items)
		result.TotalSize += b.used
	}
	return result, nil
}
