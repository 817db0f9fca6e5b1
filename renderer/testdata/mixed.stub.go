package main

import (
	"bufio"
	"fmt"
	"os"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	var name string
	var flag bool
	fmt.Fscan(reader, &name, &flag)
	var n int
	fmt.Fscan(reader, &n)
	for i := 0; i < n; i++ {
		for i := 0; i < 2; i++ {
			fmt.Println(fmt.Sprint(name) + " " + fmt.Sprint(n))
		}
	}
	fmt.Println("a")
	fmt.Println("b")
}
