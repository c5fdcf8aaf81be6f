package packer

// Strategy identifies one of the supported packing heuristics.
type Strategy string

// The closed set of packing strategies. Online strategies decide one item
// at a time; decreasing strategies sort the whole order first.
const (
	FirstFit                   Strategy = "first-fit"
	NextFit                    Strategy = "next-fit"
	BestFit                    Strategy = "best-fit"
	WorstFit                   Strategy = "worst-fit"
	AlmostWorstFit             Strategy = "almost-worst-fit"
	FirstFitDecreasing         Strategy = "first-fit-decreasing"
	BestFitDecreasing          Strategy = "best-fit-decreasing"
	ModifiedFirstFitDecreasing Strategy = "modified-first-fit-decreasing"
)

// Strategies returns every supported strategy in a stable order.
func Strategies() []Strategy {
	return []Strategy{
		FirstFit,
		NextFit,
		BestFit,
		WorstFit,
		AlmostWorstFit,
		FirstFitDecreasing,
		BestFitDecreasing,
		ModifiedFirstFitDecreasing,
	}
}

// Valid reports whether s names a supported strategy.
func (s Strategy) Valid() bool {
	switch s {
	case FirstFit, NextFit, BestFit, WorstFit, AlmostWorstFit,
		FirstFitDecreasing, BestFitDecreasing, ModifiedFirstFitDecreasing:
		return true
	}
	return false
}

// BinResult describes one packed bin: the item sizes it holds plus its used
// and remaining capacity.
type BinResult struct {
	Items     []int
	Used      int
	Available int
}

// Result summarises a packing run. TotalSize always equals the sum of the
// input item sizes; BinCount is the number of bins the strategy opened.
type Result struct {
	Bins       []BinResult
	BinCount   int
	TotalItems int
	TotalSize  int
}

// Packer describes the behaviour required from a bin packer.
type Packer interface {
	PackItems(sizes []int, capacity int, strategy Strategy) (Result, error)
}
