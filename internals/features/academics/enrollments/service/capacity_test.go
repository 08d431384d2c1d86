// file: internals/features/academics/enrollments/service/capacity_test.go
package service

import "testing"

func TestHasCapacity(t *testing.T) {
	cases := []struct {
		name   string
		active int64
		max    int
		want   bool
	}{
		{"unlimited when max is zero", 9999, 0, true},
		{"unlimited when max is negative", 10, -1, true},
		{"room left", 9, 10, true},
		{"exactly full", 10, 10, false},
		{"over full", 11, 10, false},
		{"empty course", 0, 1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasCapacity(tc.active, tc.max); got != tc.want {
				t.Fatalf("HasCapacity(%d, %d) = %v, want %v", tc.active, tc.max, got, tc.want)
			}
		})
	}
}
