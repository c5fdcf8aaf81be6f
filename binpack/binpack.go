// Package binpack implements one-dimensional bin-packing heuristics: items
// of integral size are assigned to fixed-capacity bins so that no bin ever
// holds more than its capacity, while approximately minimizing the number
// of bins used.
//
// Strategies are divided into two categories. Online strategies inspect one
// item at a time without knowledge of future items; offline strategies have
// access to the full item collection in advance. The algorithms are generic
// over caller-defined bin and item representations via the Bin and Item
// contracts, so the package never owns a concrete bin or item type.
package binpack

// Item is a unit of fixed, indivisible size that can be packed into a bin.
type Item interface {
	// Size returns the size of the item. Sizes are non-negative.
	Size() int
}

// Bin is a fixed-capacity container accumulating packed items. All bins of
// a concrete type share the same capacity.
type Bin[I Item] interface {
	// Capacity returns the total capacity of the bin. Capacity is constant
	// across all bins of the concrete type.
	Capacity() int
	// Available returns the remaining capacity of the bin.
	Available() int
	// Pack places an item into the bin. Calling Pack with an item larger
	// than the available capacity is a caller contract violation;
	// implementations may panic. Callers must validate item sizes against
	// Capacity before packing.
	Pack(item I)
}
