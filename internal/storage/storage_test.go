package storage

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/eugenenazirov/bin-packer/internal/packer"
)

func TestNewMemoryStorageReturnsDefaultProfile(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()

	got, err := store.GetProfile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := DefaultProfile()
	if got != want {
		t.Fatalf("expected default profile %+v, got %+v", want, got)
	}
}

func TestSetProfileUpdatesState(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	want := Profile{BinCapacity: 25, Strategy: packer.BestFit}
	if err := store.SetProfile(want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetProfile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSetProfileRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		profile Profile
		wantErr error
	}{
		{Profile{BinCapacity: 0, Strategy: packer.FirstFit}, ErrInvalidCapacity},
		{Profile{BinCapacity: -5, Strategy: packer.FirstFit}, ErrInvalidCapacity},
		{Profile{BinCapacity: 10, Strategy: packer.Strategy("")}, ErrUnknownStrategy},
		{Profile{BinCapacity: 10, Strategy: packer.Strategy("tightest-fit")}, ErrUnknownStrategy},
	}

	for idx, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("case_%d", idx), func(t *testing.T) {
			t.Parallel()

			store := NewMemoryStorage()
			if err := store.SetProfile(tc.profile); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v for %+v, got %v", tc.wantErr, tc.profile, err)
			}
		})
	}
}

func TestMemoryStorageConcurrentAccess(t *testing.T) {
	store := NewMemoryStorage()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.SetProfile(Profile{BinCapacity: i + 1, Strategy: packer.NextFit})
		}()
		go func() {
			defer wg.Done()
			if _, err := store.GetProfile(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := store.GetProfile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.BinCapacity <= 0 || !got.Strategy.Valid() {
		t.Fatalf("expected a valid profile after concurrent writes, got %+v", got)
	}
}
