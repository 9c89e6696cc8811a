package lru_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/remoulade/lru"
)

var _ = Describe("State", func() {
	It("starts as ABCD", func() {
		Expect(lru.NewState().String()).To(Equal("ABCD"))
	})

	It("reaches DCBA after touching A, B, C, D in order, and Replace returns A", func() {
		s := lru.NewState()
		s = s.Touch(lru.A)
		s = s.Touch(lru.B)
		s = s.Touch(lru.C)
		s = s.Touch(lru.D)
		Expect(s.String()).To(Equal("DCBA"))

		_, victim := s.Replace()
		Expect(victim).To(Equal(lru.A))
	})

	It("is idempotent under two consecutive touches of the same way", func() {
		s := lru.NewState().Touch(lru.C)
		Expect(s.Touch(lru.C)).To(Equal(s))
	})

	It("leaves the relative order of the other three ways unchanged by Touch", func() {
		for start := 0; start < 24; start++ {
			s := permutationState(start)
			for _, w := range []lru.Way{lru.A, lru.B, lru.C, lru.D} {
				before := orderWithout(s, w)
				after := orderWithout(s.Touch(w), w)
				Expect(after).To(Equal(before))
			}
		}
	})

	It("implements Replace as rightmost-then-touch", func() {
		for start := 0; start < 24; start++ {
			s := permutationState(start)
			rightmost := orderOf(s)[3]

			replaced, victim := s.Replace()
			Expect(victim).To(Equal(rightmost))
			Expect(replaced).To(Equal(s.Touch(rightmost)))
		}
	})

	It("yields the element that was second-least-recent before Touch, after touch-then-replace", func() {
		s := lru.NewState()
		before := orderOf(s)
		secondLeastRecent := before[2]

		touched := s.Touch(before[3])
		_, victim := touched.Replace()
		Expect(victim).To(Equal(secondLeastRecent))
	})
})

// orderOf renders s's MRU-to-LRU way order by re-deriving it from String().
func orderOf(s lru.State) [4]lru.Way {
	names := s.String()
	nameToWay := map[byte]lru.Way{'A': lru.A, 'B': lru.B, 'C': lru.C, 'D': lru.D}
	var ways [4]lru.Way
	for i := 0; i < 4; i++ {
		ways[i] = nameToWay[names[i]]
	}
	return ways
}

// orderWithout returns s's way order with w removed, for comparing relative
// order across a Touch(w) call.
func orderWithout(s lru.State, w lru.Way) []lru.Way {
	var out []lru.Way
	for _, o := range orderOf(s) {
		if o != w {
			out = append(out, o)
		}
	}
	return out
}

// permutationState builds one of the 24 permutations of A,B,C,D by touching
// ways in an order derived from n (a factorial-number-system index), so
// tests can exercise every possible starting state.
func permutationState(n int) lru.State {
	ways := []lru.Way{lru.A, lru.B, lru.C, lru.D}
	perm := make([]lru.Way, 0, 4)
	remaining := append([]lru.Way{}, ways...)
	for base := 4; base >= 1; base-- {
		idx := n % base
		n /= base
		perm = append(perm, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	s := lru.NewState()
	// Touch in reverse so perm[0] ends up most-recently-used.
	for i := len(perm) - 1; i >= 0; i-- {
		s = s.Touch(perm[i])
	}
	return s
}
