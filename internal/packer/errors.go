package packer

import "errors"

var (
	// ErrInvalidCapacity is returned when the bin capacity is not a positive integer.
	ErrInvalidCapacity = errors.New("bin capacity must be a positive integer")
	// ErrInvalidSizes is returned when an item size is negative.
	ErrInvalidSizes = errors.New("item sizes must be non-negative integers")
	// ErrItemTooLarge is returned when an item cannot fit into any bin because it exceeds the capacity.
	ErrItemTooLarge = errors.New("item size exceeds bin capacity")
	// ErrUnknownStrategy is returned when the requested strategy is not one of the supported set.
	ErrUnknownStrategy = errors.New("unknown packing strategy")
)
