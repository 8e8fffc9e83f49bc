package pool

import (
	"math/rand/v2"
	"slices"
	"testing"

	"pgregory.net/rapid"
)

// ============================================================================
// Property-Based Tests for Pool Invariants
// ============================================================================

func disjoint(a, b []int) bool {
	for _, n := range a {
		if slices.Contains(b, n) {
			return false
		}
	}
	return true
}

// TestProperty_NewHoldsOneToN verifies New(n) yields exactly 1..n.
func TestProperty_NewHoldsOneToN(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 500).Draw(t, "n")
		p := New(n)

		got := p.Available()
		if len(got) != n {
			t.Fatalf("len(available) = %d, want %d", len(got), n)
		}
		for i, v := range got {
			if v != i+1 {
				t.Fatalf("available[%d] = %d, want %d", i, v, i+1)
			}
		}
		if p.DrawnCount() != 0 {
			t.Fatalf("drawn not empty: %v", p.Drawn())
		}
	})
}

// TestProperty_DrawingEverythingVisitsEachOnce drains a pool and checks each
// starting number comes out exactly once, with the sets disjoint throughout.
func TestProperty_DrawingEverythingVisitsEachOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 120).Draw(t, "n")
		seed := rapid.Uint64().Draw(t, "seed")
		p := New(n, WithRand(rand.New(rand.NewPCG(seed, seed^0x9e37))))

		for p.Remaining() > 0 {
			if _, ok := p.Draw(); !ok {
				t.Fatal("draw failed with numbers remaining")
			}
			if !disjoint(p.Available(), p.Drawn()) {
				t.Fatalf("available %v and drawn %v overlap", p.Available(), p.Drawn())
			}
		}

		drawn := p.Drawn()
		if len(drawn) != n {
			t.Fatalf("drew %d numbers, want %d", len(drawn), n)
		}
		sorted := slices.Sorted(slices.Values(drawn))
		for i, v := range sorted {
			if v != i+1 {
				t.Fatalf("drawn set missing or repeating around %d: %v", i+1, sorted)
			}
		}
		if _, ok := p.Draw(); ok {
			t.Fatal("draw succeeded on drained pool")
		}
	})
}

// TestProperty_UndoRevertsDraw checks that undo right after a draw restores
// available (as a set) and drawn (exactly).
func TestProperty_UndoRevertsDraw(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 60).Draw(t, "n")
		pre := rapid.IntRange(0, n-1).Draw(t, "pre")
		p := New(n)
		for range pre {
			p.Draw()
		}

		beforeAvail := slices.Sorted(slices.Values(p.Available()))
		beforeDrawn := p.Drawn()

		drew, ok := p.Draw()
		if !ok {
			t.Fatal("expected a draw")
		}
		undone, ok := p.UndoLastDraw()
		if !ok || undone != drew {
			t.Fatalf("undo = (%d, %v), want (%d, true)", undone, ok, drew)
		}

		if got := slices.Sorted(slices.Values(p.Available())); !slices.Equal(got, beforeAvail) {
			t.Fatalf("available %v, want %v", got, beforeAvail)
		}
		if got := p.Drawn(); !slices.Equal(got, beforeDrawn) {
			t.Fatalf("drawn %v, want %v", got, beforeDrawn)
		}
	})
}

// TestProperty_RandomOpsKeepInvariants runs arbitrary draw/undo sequences
// and checks the partition and sort order after every step.
func TestProperty_RandomOpsKeepInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 40).Draw(t, "n")
		p := New(n)
		ops := rapid.SliceOfN(rapid.Bool(), 0, 100).Draw(t, "ops")

		for _, draw := range ops {
			if draw {
				p.Draw()
			} else {
				p.UndoLastDraw()
			}
			avail := p.Available()
			if !disjoint(avail, p.Drawn()) {
				t.Fatalf("overlap: %v / %v", avail, p.Drawn())
			}
			if p.Remaining()+p.DrawnCount() != n {
				t.Fatalf("lost numbers: %d + %d != %d", p.Remaining(), p.DrawnCount(), n)
			}
			if !draw && !slices.IsSorted(avail) {
				t.Fatalf("available not sorted after undo: %v", avail)
			}
		}
	})
}

// TestProperty_AddedNumberReadsNotDrawn checks add(x) then check([x]).
func TestProperty_AddedNumberReadsNotDrawn(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := New(rapid.IntRange(0, 30).Draw(t, "n"))
		for range rapid.IntRange(0, 10).Draw(t, "draws") {
			p.Draw()
		}
		x := rapid.IntRange(-50, 100).Draw(t, "x")
		wasDrawn := slices.Contains(p.Drawn(), x)

		p.Add(x)
		statuses, all := p.CheckStatus([]int{x})
		if wasDrawn {
			if !all {
				t.Fatalf("%d was drawn but reads not drawn", x)
			}
			return
		}
		if all || statuses[0].String() != "Not Withdrawn" {
			t.Fatalf("%d reads %v all=%v, want not drawn", x, statuses, all)
		}
	})
}
