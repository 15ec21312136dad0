package routing

import "testing"

func TestEveningListID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"base id", "list-1", "list-1-evening"},
		{"already evening", "list-1-evening", "list-1-evening"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EveningListID(tt.in); got != tt.want {
				t.Errorf("EveningListID(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBaseListID(t *testing.T) {
	if got := BaseListID("list-1-evening"); got != "list-1" {
		t.Errorf("BaseListID = %q, want list-1", got)
	}
	if got := BaseListID("list-1"); got != "list-1" {
		t.Errorf("BaseListID = %q, want list-1", got)
	}
}

func TestIsEveningTime(t *testing.T) {
	tests := []struct {
		time string
		want bool
	}{
		{"15:00", false}, // the cutoff itself stays on the day list
		{"15:01", true},
		{"14:59", false},
		{"23:59", true},
		{"00:00", false},
		{"", false},
		{"  ", false},
		{"not-a-time", false},
		{"25:00", false},
	}
	for _, tt := range tests {
		if got := IsEveningTime(tt.time); got != tt.want {
			t.Errorf("IsEveningTime(%q) = %v, want %v", tt.time, got, tt.want)
		}
	}
}

func TestRouteList(t *testing.T) {
	tests := []struct {
		name string
		list string
		time string
		want string
	}{
		{"day time on base", "list-1", "08:00", "list-1"},
		{"evening time on base", "list-1", "16:00", "list-1-evening"},
		{"day time on evening id routes back", "list-1-evening", "08:00", "list-1"},
		{"evening time on evening id", "list-1-evening", "20:00", "list-1-evening"},
		{"no time stays on base", "list-1-evening", "", "list-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RouteList(tt.list, tt.time); got != tt.want {
				t.Errorf("RouteList(%q, %q) = %q, want %q", tt.list, tt.time, got, tt.want)
			}
		})
	}
}

func TestRouteListIdempotent(t *testing.T) {
	for _, list := range []string{"list-1", "list-1-evening"} {
		for _, tm := range []string{"", "08:00", "15:00", "15:01", "22:00"} {
			once := RouteList(list, tm)
			twice := RouteList(once, tm)
			if once != twice {
				t.Errorf("RouteList not idempotent for (%q, %q): %q then %q", list, tm, once, twice)
			}
		}
	}
}
