package parallel

import (
	"errors"
	"testing"
)

func TestPartition_Examples(t *testing.T) {
	tests := []struct {
		name    string
		threads int
		rows    int
		want    []int
	}{
		{"single thread", 1, 10, []int{0, 10}},
		{"even split", 2, 10, []int{0, 5, 10}},
		{"remainder in last band", 3, 10, []int{0, 3, 6, 10}},
		{"more threads than rows", 4, 2, []int{0, 0, 0, 0, 2}},
		{"zero rows", 3, 0, []int{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Partition(tt.threads, tt.rows)
			if err != nil {
				t.Fatalf("Partition(%d, %d) error: %v", tt.threads, tt.rows, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Partition(%d, %d) = %v, want %v", tt.threads, tt.rows, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Partition(%d, %d)[%d] = %d, want %d", tt.threads, tt.rows, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPartition_Completeness(t *testing.T) {
	for _, rows := range []int{1, 7, 64, 101} {
		for threads := 1; threads <= rows; threads++ {
			b, err := Partition(threads, rows)
			if err != nil {
				t.Fatalf("Partition(%d, %d) error: %v", threads, rows, err)
			}
			if len(b) != threads+1 {
				t.Fatalf("Partition(%d, %d) has %d boundaries, want %d", threads, rows, len(b), threads+1)
			}
			if b[0] != 0 || b[threads] != rows {
				t.Errorf("Partition(%d, %d) = %v, want first 0 and last %d", threads, rows, b, rows)
			}

			covered := make([]int, rows)
			for i := 0; i < threads; i++ {
				if b[i] > b[i+1] {
					t.Fatalf("Partition(%d, %d) not monotone: %v", threads, rows, b)
				}
				for r := b[i]; r < b[i+1]; r++ {
					covered[r]++
				}
			}
			for r, n := range covered {
				if n != 1 {
					t.Errorf("Partition(%d, %d): row %d covered %d times", threads, rows, r, n)
				}
			}
		}
	}
}

func TestPartition_InvalidThreads(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := Partition(n, 10); !errors.Is(err, ErrInvalidThreads) {
			t.Errorf("Partition(%d, 10) error = %v, want ErrInvalidThreads", n, err)
		}
	}
}

func TestBands(t *testing.T) {
	bands, err := Bands(3, 10)
	if err != nil {
		t.Fatalf("Bands error: %v", err)
	}
	want := []Band{{0, 3}, {3, 6}, {6, 10}}
	if len(bands) != len(want) {
		t.Fatalf("Bands(3, 10) = %v, want %v", bands, want)
	}
	for i := range want {
		if bands[i] != want[i] {
			t.Errorf("bands[%d] = %v, want %v", i, bands[i], want[i])
		}
	}
	if bands[2].Rows() != 4 {
		t.Errorf("last band Rows() = %d, want 4", bands[2].Rows())
	}
	if !(Band{Start: 2, End: 2}).Empty() {
		t.Error("Band{2,2} should be empty")
	}
}
