package workspace

import (
	"reflect"
	"testing"
)

func TestToggleID_AddAndRemove(t *testing.T) {
	ids := []string{"a", "b"}

	ids = ToggleID(ids, "c", 5)
	if !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
		t.Fatalf("expected [a b c], got %v", ids)
	}

	ids = ToggleID(ids, "b", 5)
	if !reflect.DeepEqual(ids, []string{"a", "c"}) {
		t.Fatalf("expected [a c], got %v", ids)
	}
}

func TestToggleID_TwiceRestoresMembership(t *testing.T) {
	original := []string{"a", "b"}

	once := ToggleID(original, "c", 5)
	twice := ToggleID(once, "c", 5)
	if !reflect.DeepEqual(twice, original) {
		t.Fatalf("expected %v, got %v", original, twice)
	}

	once = ToggleID(original, "a", 5)
	twice = ToggleID(once, "a", 5)
	if len(twice) != len(original) {
		t.Fatalf("expected %d ids, got %v", len(original), twice)
	}
	for _, id := range original {
		if !ContainsID(twice, id) {
			t.Fatalf("expected %s in %v", id, twice)
		}
	}
}

func TestToggleID_NoOpAtCap(t *testing.T) {
	ids := []string{"a", "b", "c"}

	got := ToggleID(ids, "d", 3)
	if !reflect.DeepEqual(got, ids) {
		t.Fatalf("expected cap no-op, got %v", got)
	}

	// Removal still works at the cap.
	got = ToggleID(ids, "c", 3)
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("expected [a b], got %v", got)
	}
}

func TestSelectAll_PartialFillAtCap(t *testing.T) {
	ids := []string{"a"}
	candidates := []string{"b", "c", "d", "e"}

	got := SelectAll(ids, candidates, 3)
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("expected [a b c], got %v", got)
	}
}

func TestSelectAll_SkipsExisting(t *testing.T) {
	got := SelectAll([]string{"a", "c"}, []string{"a", "b", "c", "d"}, 10)
	if !reflect.DeepEqual(got, []string{"a", "c", "b", "d"}) {
		t.Fatalf("expected [a c b d], got %v", got)
	}
}

func TestCapInvariant_MixedSequences(t *testing.T) {
	const limit = 4
	ids := []string{}
	steps := []func([]string) []string{
		func(s []string) []string { return ToggleID(s, "a", limit) },
		func(s []string) []string { return SelectAll(s, []string{"b", "c", "d", "e", "f"}, limit) },
		func(s []string) []string { return ToggleID(s, "g", limit) },
		func(s []string) []string { return ToggleID(s, "b", limit) },
		func(s []string) []string { return SelectAll(s, []string{"g", "h", "i"}, limit) },
		func(s []string) []string { return DeselectAll(s, []string{"a"}) },
		func(s []string) []string { return SelectAll(s, []string{"j", "k"}, limit) },
	}
	for i, step := range steps {
		ids = step(ids)
		if len(ids) > limit {
			t.Fatalf("step %d exceeded cap: %v", i, ids)
		}
	}
}

func TestDeselectAll_IgnoresCap(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	got := DeselectAll(ids, []string{"b", "d", "zz"})
	if !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("expected [a c], got %v", got)
	}
}
