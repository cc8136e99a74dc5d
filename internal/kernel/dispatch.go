// Package kernel runs per-texel compute kernels over fixed-size grids.
//
// Every kernel invocation writes exactly one output element and shares no
// mutable state with other invocations, so a grid can be split across
// goroutines freely. Output is identical for any worker count.
package kernel

import (
	"runtime"
	"sync"
)

// Dispatch2D invokes fn(x, y) for every cell of a width x height grid.
// workers <= 0 uses one worker per CPU. Rows are divided into contiguous
// bands, one goroutine per band.
func Dispatch2D(width, height, workers int, fn func(x, y int)) {
	if width <= 0 || height <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > height {
		workers = height
	}

	var wg sync.WaitGroup
	rowsPerWorker := (height + workers - 1) / workers

	for start := 0; start < height; start += rowsPerWorker {
		end := start + rowsPerWorker
		if end > height {
			end = height
		}

		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				for x := 0; x < width; x++ {
					fn(x, y)
				}
			}
		}(start, end)
	}

	wg.Wait()
}

// Dispatch3D invokes fn(x, y, layer) for every cell of a width x height grid
// on each of the given layers. Used for cube faces and texture arrays.
func Dispatch3D(width, height, layers, workers int, fn func(x, y, layer int)) {
	for layer := 0; layer < layers; layer++ {
		l := layer
		Dispatch2D(width, height, workers, func(x, y int) {
			fn(x, y, l)
		})
	}
}
