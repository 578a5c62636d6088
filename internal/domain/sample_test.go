package domain_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/evan-taojiangcb/huangli-programmer/internal/domain"
)

func TestSeededRandom_KnownValues(t *testing.T) {
	tests := []struct {
		seed int
		want float64
	}{
		{0, 0},
		{1, 0.7098480789645691},
		{3, 0.20008059867222983},
		{4321, 0.8892951898997126},
		{4324, 0.6772539476605743},
	}
	for _, tt := range tests {
		got := domain.SeededRandom(tt.seed)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("seed %d: expected %v, got %v", tt.seed, tt.want, got)
		}
	}
}

func TestSeededRandom_Bounded(t *testing.T) {
	for seed := -5000; seed <= 20000; seed++ {
		v := domain.SeededRandom(seed)
		if v < 0 || v >= 1 || math.IsNaN(v) {
			t.Fatalf("seed %d: %v outside [0, 1)", seed, v)
		}
	}
}

func TestPickDistinct_OrderIsStable(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e"}

	got, err := domain.PickDistinct(pool, 5, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"c", "b", "e", "d", "a"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPickDistinct_FullShuffle(t *testing.T) {
	pool := make([]int, 24)
	for i := range pool {
		pool[i] = i
	}

	got, err := domain.PickDistinct(pool, 24, 4321)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{3, 23, 21, 20, 9, 5, 11, 13, 6, 16, 4, 17, 8, 2, 7, 0, 1, 18, 22, 14, 19, 15, 12, 10}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// A prefix draw is the prefix of the full shuffle.
	top, _ := domain.PickDistinct(pool, 3, 4321)
	if !slices.Equal(top, want[:3]) {
		t.Errorf("expected prefix %v, got %v", want[:3], top)
	}
}

func TestPickDistinct_NoDuplicates(t *testing.T) {
	pool := domain.UnsuitableActivities()
	for seed := range 2000 {
		got, err := domain.PickDistinct(pool, 10, seed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen := make(map[string]bool)
		for _, s := range got {
			if seen[s] {
				t.Fatalf("seed %d: duplicate %q in %v", seed, s, got)
			}
			seen[s] = true
		}
	}
}

func TestPickDistinct_DoesNotMutatePool(t *testing.T) {
	pool := []int{1, 2, 3, 4, 5, 6}
	orig := slices.Clone(pool)

	_, _ = domain.PickDistinct(pool, 3, 99)
	if !slices.Equal(pool, orig) {
		t.Errorf("pool mutated: %v", pool)
	}
}

func TestPickDistinct_Count(t *testing.T) {
	pool := []int{1, 2, 3}

	for _, n := range []int{-1, 4} {
		if _, err := domain.PickDistinct(pool, n, 0); !errors.Is(err, domain.ErrInvalidCount) {
			t.Errorf("count=%d: expected ErrInvalidCount, got %v", n, err)
		}
	}

	got, err := domain.PickDistinct(pool, 0, 0)
	if err != nil || len(got) != 0 {
		t.Errorf("count=0: expected empty result, got %v, %v", got, err)
	}

	single, err := domain.PickDistinct([]int{42}, 1, 5)
	if err != nil || !slices.Equal(single, []int{42}) {
		t.Errorf("single: expected [42], got %v, %v", single, err)
	}
}
