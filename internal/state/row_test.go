package state

import "testing"

func TestRowRoundTrip(t *testing.T) {
	for code := 0; code < MaxRowCode; code++ {
		r := Row(code)
		slots, err := DecodeRow(r)
		if err != nil {
			t.Fatalf("DecodeRow(%d): %v", code, err)
		}
		if got := EncodeRow(slots); got != r {
			t.Fatalf("EncodeRow(DecodeRow(%d)) = %d, want %d", code, got, code)
		}
	}
}

func TestRowRoundTripFromSlots(t *testing.T) {
	for a := SlotEmpty; a <= SlotSecond; a++ {
		for b := SlotEmpty; b <= SlotSecond; b++ {
			for c := SlotEmpty; c <= SlotSecond; c++ {
				slots := [3]Slot{a, b, c}
				r := EncodeRow(slots)
				if !r.IsValid() {
					t.Fatalf("EncodeRow(%v) produced invalid code %d", slots, r)
				}
				got, err := DecodeRow(r)
				if err != nil {
					t.Fatalf("DecodeRow(%d): %v", r, err)
				}
				if got != slots {
					t.Fatalf("round trip %v -> %d -> %v", slots, r, got)
				}
			}
		}
	}
}

func TestDecodeRowInvalid(t *testing.T) {
	if _, err := DecodeRow(Row(MaxRowCode)); err != ErrInvalidEncoding {
		t.Fatalf("DecodeRow(27) = %v, want ErrInvalidEncoding", err)
	}
	if _, err := DecodeRow(Row(31)); err != ErrInvalidEncoding {
		t.Fatalf("DecodeRow(31) = %v, want ErrInvalidEncoding", err)
	}
}

func TestMutateRowMatchesFunctionalReference(t *testing.T) {
	for code := 0; code < MaxRowCode; code++ {
		r := Row(code)
		for c := 0; c < 3; c++ {
			for _, p := range []Player{First, Second} {
				got, err := MutateRow(r, c, p)
				if err != nil {
					t.Fatalf("MutateRow(%d,%d,%v): %v", code, c, p, err)
				}
				slots, err := DecodeRow(r)
				if err != nil {
					t.Fatal(err)
				}
				slots[c] = NewSlot(p)
				want := EncodeRow(slots)
				if got != want {
					t.Fatalf("MutateRow(%d,%d,%v) = %d, want %d", code, c, p, got, want)
				}
			}
		}
	}
}
