package main

import (
	"bufio"
	"fmt"
	"os"
)

// Echo the grid.

func main() {
	reader := bufio.NewReader(os.Stdin)

	var w int
	var h int
	fmt.Fscan(reader, &w, &h)
	for i := 0; i < h; i++ {
		var row string
		fmt.Fscan(reader, &row)
	}
	for i := 0; i < w; i++ {
		var x float64
		fmt.Fscan(reader, &x)
	}
	// The grid size.
	fmt.Println("size " + fmt.Sprint(w) + "x" + fmt.Sprint(h))
	fmt.Println("done")
}
