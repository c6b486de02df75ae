package routeindex

import (
	"testing"

	"github.com/king-open/SkyFinder/internal/skyfinder/entity"
)

func flight(id, from, to string) entity.Flight {
	return entity.Flight{ID: id, Origin: from, Destination: to, Transfers: entity.TransferDirect}
}

func TestIndex_Lookup(t *testing.T) {
	idx := New([]entity.Flight{
		flight("A", "PEK", "SHA"),
		flight("B", "PEK", "CAN"),
		flight("C", "PEK", "SHA"),
	})

	got := idx.Lookup("PEK", "SHA")
	if len(got) != 2 || got[0].ID != "A" || got[1].ID != "C" {
		t.Fatalf("Lookup(PEK,SHA) = %+v, want [A C] in catalog order", got)
	}
	for _, f := range got {
		if f.Origin != "PEK" || f.Destination != "SHA" {
			t.Errorf("flight %s indexed under wrong key", f.ID)
		}
	}

	if got := idx.Lookup("pek", "can"); len(got) != 1 {
		t.Errorf("Lookup is not case-insensitive: %+v", got)
	}
	if got := idx.Lookup("SHA", "PEK"); got == nil || len(got) != 0 {
		t.Errorf("Lookup(SHA,PEK) = %#v, want empty non-nil", got)
	}
}

func TestIndex_Dedup(t *testing.T) {
	a := flight("A", "PEK", "SHA")
	idx := New([]entity.Flight{a, a, flight("B", "PEK", "SHA")})
	if idx.Len() != 2 {
		t.Errorf("Len() = %d, want 2", idx.Len())
	}
}

func TestIndex_LookupReturnsCopy(t *testing.T) {
	idx := New([]entity.Flight{flight("A", "PEK", "SHA")})
	got := idx.Lookup("PEK", "SHA")
	got[0].ID = "mutated"
	if idx.Lookup("PEK", "SHA")[0].ID != "A" {
		t.Error("Lookup exposed internal slice")
	}
}

func TestIndex_Keys(t *testing.T) {
	idx := New([]entity.Flight{flight("A", "SHA", "PEK"), flight("B", "PEK", "SHA")})
	keys := idx.Keys()
	if len(keys) != 2 || keys[0] != "PEK-SHA" || keys[1] != "SHA-PEK" {
		t.Errorf("Keys() = %v", keys)
	}
	if !idx.Has("SHA", "PEK") || idx.Has("SHA", "CAN") {
		t.Error("Has() mismatch")
	}
	if len(idx.LookupKey("PEK-SHA")) != 1 {
		t.Error("LookupKey(PEK-SHA) empty")
	}
}
