package storage

import (
	"errors"
	"sync"

	"github.com/eugenenazirov/bin-packer/internal/packer"
)

var (
	// ErrInvalidCapacity indicates the profile's bin capacity is not a positive integer.
	ErrInvalidCapacity = errors.New("bin capacity must be a positive integer")
	// ErrUnknownStrategy indicates the profile names a strategy outside the supported set.
	ErrUnknownStrategy = errors.New("unknown packing strategy")
)

var defaultProfile = Profile{
	BinCapacity: 100,
	Strategy:    packer.FirstFitDecreasing,
}

// Profile holds the packing defaults applied when a request omits them.
type Profile struct {
	BinCapacity int
	Strategy    packer.Strategy
}

// Storage provides access to the packing profile used by the service.
type Storage interface {
	GetProfile() (Profile, error)
	SetProfile(profile Profile) error
}

// MemoryStorage keeps the packing profile in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu      sync.RWMutex
	profile Profile
}

// NewMemoryStorage initialises storage with the default packing profile.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{profile: defaultProfile}
}

// DefaultProfile returns the default packing profile.
func DefaultProfile() Profile {
	return defaultProfile
}

// GetProfile returns the currently configured packing profile.
func (s *MemoryStorage) GetProfile() (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profile, nil
}

// SetProfile validates and stores the provided packing profile.
func (s *MemoryStorage) SetProfile(profile Profile) error {
	if err := validateProfile(profile); err != nil {
		return err
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	return nil
}

func validateProfile(profile Profile) error {
	if profile.BinCapacity <= 0 {
		return ErrInvalidCapacity
	}
	if !profile.Strategy.Valid() {
		return ErrUnknownStrategy
	}
	return nil
}
