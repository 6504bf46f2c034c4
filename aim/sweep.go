package aim

import "starsoldier/taskqueue"

// Sweep classifies every target on a w x h canvas against origin and returns
// codes indexed as codes[y][x], along with the number of goroutines the rows
// were spread over (workers <= 0 means one per CPU).
func Sweep(w, h int, origin Position, workers int) (codes [][]Code, used int) {
	if w <= 0 || h <= 0 {
		panic("aim: sweep canvas must be at least 1x1")
	}

	codes = make([][]Code, h)
	for y := range codes {
		codes[y] = make([]Code, w)
	}

	// each job owns exactly one row so workers never share a slice
	q := taskqueue.NewQ[int](workers, h, func(_ *taskqueue.Q[int], y int) {
		row := codes[y]
		for x := range row {
			row[x] = Classify(origin, Position{X: x, Y: y})
		}
	})
	for y := 0; y < h; y++ {
		q.SubmitItem(y)
	}
	q.Wait()
	q.Close()

	return codes, q.Workers()
}
