package main

import (
	"bufio"
	"fmt"
	"os"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	var m int
	var n int
	fmt.Fscan(reader, &m, &n)
	fmt.Println("result")
}
