package carousel

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		currentIndex  int
		itemWidth     float64
		dragThreshold float64
		dx            float64
		vx            float64
		itemCount     int
		want          int
	}{
		{
			name:         "slow drag left lands on next page",
			currentIndex: 2, itemWidth: 300, dx: -350, vx: 0.4, itemCount: 5,
			want: 3,
		},
		{
			name:         "fast flick left skips pages and clamps to last",
			currentIndex: 2, itemWidth: 300, dx: -350, vx: 2.6, itemCount: 5,
			want: 4,
		},
		{
			name:         "short drag right stays inside dead zone",
			currentIndex: 1, itemWidth: 300, dragThreshold: 10, dx: 120, itemCount: 5,
			want: 1,
		},
		{
			name:         "drag right past half a page goes back one",
			currentIndex: 3, itemWidth: 300, dx: 160, itemCount: 5,
			want: 2,
		},
		{
			name:         "drag right short of half a page snaps back",
			currentIndex: 3, itemWidth: 300, dx: 140, itemCount: 5,
			want: 3,
		},
		{
			name:         "threshold bias tips a short drag right over the boundary",
			currentIndex: 3, itemWidth: 300, dragThreshold: 20, dx: 140, itemCount: 5,
			want: 2,
		},
		{
			name:         "fast flick right clamps to first",
			currentIndex: 1, itemWidth: 300, dx: 200, vx: -4, itemCount: 5,
			want: 0,
		},
		{
			name:         "drag right from first item stays at zero",
			currentIndex: 0, itemWidth: 300, dx: 140, itemCount: 5,
			want: 0,
		},
		{
			name:         "speed of exactly one adds nothing",
			currentIndex: 0, itemWidth: 100, dx: -60, vx: 1.2, itemCount: 10,
			want: 1,
		},
		{
			name:         "speed of three adds two pages",
			currentIndex: 0, itemWidth: 100, dx: -60, vx: 3.1, itemCount: 10,
			want: 3,
		},
		{
			name:         "single item always resolves to zero",
			currentIndex: 0, itemWidth: 300, dx: -900, vx: 9, itemCount: 1,
			want: 0,
		},
		{
			name:         "empty list resolves to zero",
			currentIndex: 0, itemWidth: 300, dx: 900, vx: 9, itemCount: 0,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.currentIndex, tt.itemWidth, tt.dragThreshold, tt.dx, tt.vx, tt.itemCount)
			if got != tt.want {
				t.Errorf("Resolve() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolve_ZeroMotionIsIdempotent(t *testing.T) {
	for _, w := range []float64{1, 37, 300, 1024} {
		for _, threshold := range []float64{0, w * 0.1, w * 0.45} {
			for n := 1; n <= 6; n++ {
				for i := 0; i < n; i++ {
					if got := Resolve(i, w, threshold, 0, 0, n); got != i {
						t.Errorf("Resolve(%d, %v, %v, 0, 0, %d) = %d, want %d", i, w, threshold, n, got, i)
					}
				}
			}
		}
	}
}

func TestResolve_StaysInBounds(t *testing.T) {
	const n = 7
	for i := 0; i < n; i++ {
		for _, dx := range []float64{-5000, -901, -150, -1, 0, 1, 150, 901, 5000} {
			for _, vx := range []float64{-12, -2.5, 0, 0.7, 3, 40} {
				got := Resolve(i, 300, 15, dx, vx, n)
				if got < 0 || got > n-1 {
					t.Errorf("Resolve(%d, dx=%v, vx=%v) = %d, out of [0, %d]", i, dx, vx, got, n-1)
				}
			}
		}
	}
}

func TestResolve_VelocityNeverShrinksDisplacement(t *testing.T) {
	abs := func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	}

	const n = 20
	for _, dx := range []float64{-320, -100, 100, 320} {
		start := 10
		prev := -1
		for vx := 0.0; vx <= 12; vx += 0.25 {
			got := Resolve(start, 100, 0, dx, vx, n)
			d := abs(got - start)
			if d < prev {
				t.Fatalf("dx=%v vx=%v: displacement %d shrank from %d", dx, vx, d, prev)
			}
			prev = d
		}
	}
}
