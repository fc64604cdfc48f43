package fold

import "testing"

// testPanels builds n spreads worth of panels with contiguous indices.
func testPanels(n int) []Panel {
	panels := []Panel{}
	for i := 0; i < n; i++ {
		panels = append(panels,
			Panel{ID: NewID(), Side: Front, Index: i},
			Panel{ID: NewID(), Side: Back, Index: i},
		)
	}
	return panels
}

func TestNormalizeDefaults(t *testing.T) {
	panels := testPanels(3)

	creases := Normalize(panels, nil)
	if len(creases) != 4 {
		t.Fatalf("Expected 4 creases (2 positions x 2 sides), got %d", len(creases))
	}

	for k := 0; k < 2; k++ {
		front := CreaseAt(creases, Front, k)
		back := CreaseAt(creases, Back, k)
		if front == nil || back == nil {
			t.Fatalf("Missing crease pair at position %d", k)
		}
		if front.Direction != Forward {
			t.Errorf("Front crease %d: expected default forward, got %s", k, front.Direction)
		}
		if back.Direction != Backward {
			t.Errorf("Back crease %d: expected backward, got %s", k, back.Direction)
		}
		if front.Sequence != k || back.Sequence != k {
			t.Errorf("Position %d: expected default sequence %d, got front=%d back=%d",
				k, k, front.Sequence, back.Sequence)
		}
	}
}

func TestNormalizeFrontIsDirectionTruth(t *testing.T) {
	panels := testPanels(2)
	// Both creases claim backward; the front one wins and the back one is
	// forced opposite.
	creases := []Crease{
		{ID: "f", Side: Front, Between: 0, Direction: Backward, Sequence: 0},
		{ID: "b", Side: Back, Between: 0, Direction: Backward, Sequence: 0},
	}

	out := Normalize(panels, creases)
	front := CreaseAt(out, Front, 0)
	back := CreaseAt(out, Back, 0)
	if front.Direction != Backward {
		t.Errorf("Front direction changed: got %s", front.Direction)
	}
	if back.Direction != Forward {
		t.Errorf("Back crease not forced opposite: got %s", back.Direction)
	}
	if front.ID != "f" || back.ID != "b" {
		t.Errorf("Existing crease IDs not preserved: %s, %s", front.ID, back.ID)
	}
}

func TestNormalizeDropsOrphans(t *testing.T) {
	panels := testPanels(2) // only position 0 is valid
	creases := []Crease{
		{ID: "f", Side: Front, Between: 0, Direction: Forward, Sequence: 0},
		{ID: "orphan", Side: Front, Between: 7, Direction: Forward, Sequence: 7},
	}

	out := Normalize(panels, creases)
	if len(out) != 2 {
		t.Fatalf("Expected orphan dropped, got %d creases", len(out))
	}
	if CreaseAt(out, Front, 7) != nil {
		t.Errorf("Orphan crease survived normalization")
	}
}

func TestNormalizeSequenceFromEitherSide(t *testing.T) {
	panels := testPanels(3)
	// Position 1 only has a back crease; its sequence must win over the
	// positional default.
	creases := []Crease{
		{ID: "f", Side: Front, Between: 0, Direction: Forward, Sequence: 1},
		{ID: "b", Side: Back, Between: 1, Direction: Forward, Sequence: 0},
	}

	out := Normalize(panels, creases)
	front := CreaseAt(out, Front, 1)
	if front == nil || front.Sequence != 0 {
		t.Fatalf("Expected sequence taken from back crease, got %+v", front)
	}
	// Direction truth flows front -> back; with no front crease the back
	// direction is kept via its inverse.
	if front.Direction != Backward {
		t.Errorf("Expected front direction backward (inverse of back's forward), got %s", front.Direction)
	}
}

func TestNormalizeRepairsDuplicateSequences(t *testing.T) {
	panels := testPanels(4)
	// Hand-edited input: two positions both claim sequence 0 and one sits
	// out of range. Reranking must restore the permutation, earlier
	// position first on ties.
	creases := []Crease{
		{ID: "a", Side: Front, Between: 0, Direction: Forward, Sequence: 0},
		{ID: "b", Side: Front, Between: 1, Direction: Forward, Sequence: 0},
		{ID: "c", Side: Front, Between: 2, Direction: Forward, Sequence: 9},
	}

	out := Normalize(panels, creases)
	assertInvariants(t, panels, out)
	if got := CreaseAt(out, Front, 0).Sequence; got != 0 {
		t.Errorf("Position 0: expected rank 0, got %d", got)
	}
	if got := CreaseAt(out, Front, 1).Sequence; got != 1 {
		t.Errorf("Position 1: expected rank 1 on tie, got %d", got)
	}
	if got := CreaseAt(out, Front, 2).Sequence; got != 2 {
		t.Errorf("Position 2: expected out-of-range value ranked last, got %d", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	panels := testPanels(4)
	creases := []Crease{
		{ID: "x", Side: Back, Between: 2, Direction: Forward, Sequence: 0},
		{ID: "y", Side: Front, Between: 0, Direction: Backward, Sequence: 2},
	}

	once := Normalize(panels, creases)
	twice := Normalize(panels, once)
	if len(once) != len(twice) {
		t.Fatalf("Idempotence broken: %d vs %d creases", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("Crease %d changed on second pass: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestNormalizeUnequalSides(t *testing.T) {
	// 3 front panels but only 2 back panels: front gets creases at 0 and 1,
	// back only at 0.
	panels := []Panel{
		{ID: "f0", Side: Front, Index: 0},
		{ID: "f1", Side: Front, Index: 1},
		{ID: "f2", Side: Front, Index: 2},
		{ID: "b0", Side: Back, Index: 0},
		{ID: "b1", Side: Back, Index: 1},
	}

	out := Normalize(panels, nil)
	if CreaseAt(out, Front, 1) == nil {
		t.Errorf("Expected front crease at position 1")
	}
	if CreaseAt(out, Back, 1) != nil {
		t.Errorf("Back crease emitted past the back panel count")
	}
}

func TestReindexFillsGaps(t *testing.T) {
	panels := []Panel{
		{ID: "a", Side: Front, Index: 4},
		{ID: "b", Side: Front, Index: 9},
		{ID: "c", Side: Back, Index: 1},
		{ID: "d", Side: Back, Index: 3},
	}

	out := Reindex(panels)
	assertContiguous(t, out)
	// Relative order by old index must survive.
	if PanelAt(out, Front, 0).ID != "a" || PanelAt(out, Front, 1).ID != "b" {
		t.Errorf("Front relative order lost: %+v", out)
	}
	if PanelAt(out, Back, 0).ID != "c" || PanelAt(out, Back, 1).ID != "d" {
		t.Errorf("Back relative order lost: %+v", out)
	}
}

// assertContiguous checks that each side's indices are exactly 0..count-1.
func assertContiguous(t *testing.T, panels []Panel) {
	t.Helper()
	for _, side := range []Side{Front, Back} {
		row := SidePanels(panels, side)
		for i, p := range row {
			if p.Index != i {
				t.Fatalf("%s indices not contiguous: %+v", side, row)
			}
		}
	}
}

// assertInvariants checks the cross-side crease invariants on a normalized
// deck: opposite directions, shared sequences, and the sequence permutation.
func assertInvariants(t *testing.T, panels []Panel, creases []Crease) {
	t.Helper()
	n := SpreadCount(panels)
	if CountSide(panels, Front) != CountSide(panels, Back) {
		t.Fatalf("Side counts unequal: front=%d back=%d",
			CountSide(panels, Front), CountSide(panels, Back))
	}
	seen := map[int]bool{}
	for k := 0; k < n-1; k++ {
		front := CreaseAt(creases, Front, k)
		back := CreaseAt(creases, Back, k)
		if front == nil || back == nil {
			t.Fatalf("Missing crease pair at %d", k)
		}
		if front.Direction == back.Direction {
			t.Errorf("Position %d: both creases fold %s", k, front.Direction)
		}
		if front.Sequence != back.Sequence {
			t.Errorf("Position %d: sequences differ (%d vs %d)", k, front.Sequence, back.Sequence)
		}
		if front.Sequence < 0 || front.Sequence > n-2 || seen[front.Sequence] {
			t.Errorf("Sequence %d breaks the 0..%d permutation", front.Sequence, n-2)
		}
		seen[front.Sequence] = true
	}
}
