package imp

import (
	"image"
	"runtime"
	"sync"
)

// bands splits the rows of r into at most GOMAXPROCS horizontal bands and
// calls fn on each of them concurrently. fn must only write rows in
// [y0, y1).
func bands(r image.Rectangle, fn func(y0, y1 int)) {
	h := r.Dy()
	n := runtime.GOMAXPROCS(0)
	if n > h {
		n = h
	}
	if n <= 1 {
		fn(r.Min.Y, r.Max.Y)
		return
	}

	step := (h + n - 1) / n
	var wg sync.WaitGroup
	for y0 := r.Min.Y; y0 < r.Max.Y; y0 += step {
		y1 := y0 + step
		if y1 > r.Max.Y {
			y1 = r.Max.Y
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}
