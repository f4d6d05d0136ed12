package service

import (
	"HelpDesk/model"
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"new", "in_work", "closed", "cancelled"} {
		status, ok := ParseStatus(raw)
		if !ok {
			t.Fatalf("ParseStatus(%q) rejected a valid status", raw)
		}
		if string(status) != raw {
			t.Fatalf("ParseStatus(%q) = %q", raw, status)
		}
	}
	for _, raw := range []string{"", "done", "NEW", "in-work"} {
		if _, ok := ParseStatus(raw); ok {
			t.Fatalf("ParseStatus(%q) accepted an invalid status", raw)
		}
	}
}

func TestStorable(t *testing.T) {
	if StatusNew.Storable() {
		t.Fatal("StatusNew must not be storable")
	}
	for _, status := range []Status{StatusInWork, StatusClosed, StatusCancelled} {
		if !status.Storable() {
			t.Fatalf("%s should be storable", status)
		}
	}
}

func TestValidateTransition(t *testing.T) {
	cases := []struct {
		name     string
		from, to Status
		positive int64
		want     error
	}{
		{"in_work to cancelled", StatusInWork, StatusCancelled, 0, nil},
		{"in_work to closed with positive result", StatusInWork, StatusClosed, 1, nil},
		{"in_work to closed without positive result", StatusInWork, StatusClosed, 0, ErrNotClosable},
		{"same state", StatusInWork, StatusInWork, 3, ErrNotFound},
		{"target new", StatusClosed, StatusNew, 1, ErrNotFound},
		{"target unknown", StatusInWork, Status("done"), 1, ErrNotFound},
		{"reopen closed", StatusClosed, StatusInWork, 0, nil},
		{"cancelled to closed", StatusCancelled, StatusClosed, 2, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTransition(tc.from, tc.to, tc.positive)
			if !errors.Is(err, tc.want) && err != tc.want {
				t.Fatalf("ValidateTransition(%s, %s, %d) = %v, want %v",
					tc.from, tc.to, tc.positive, err, tc.want)
			}
		})
	}
}

func TestEffectiveStatus(t *testing.T) {
	if got := EffectiveStatus(nil); got != StatusNew {
		t.Fatalf("nil order: got %s", got)
	}
	if got := EffectiveStatus(&model.Order{}); got != StatusNew {
		t.Fatalf("ungrouped order: got %s", got)
	}

	groupID := uint64(7)
	order := &model.Order{
		GroupOrderID: &groupID,
		GroupOrder:   &model.GroupOrder{Status: "closed"},
	}
	if got := EffectiveStatus(order); got != StatusClosed {
		t.Fatalf("grouped order: got %s, want closed", got)
	}

	// A grouped order with no preloaded group still reads as taken.
	order = &model.Order{GroupOrderID: &groupID}
	if got := EffectiveStatus(order); got != StatusInWork {
		t.Fatalf("grouped order without preload: got %s, want in_work", got)
	}
}
