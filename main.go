package main

import (
	"fmt"
	"os"
	"time"

	"github.com/antgroup/meter/pkg/progress"
)

func main() {
	p, err := progress.Range([]int{1, 100, 2},
		progress.OptionSetDescription("trange"),
		progress.OptionSetLeave(true))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	for range p.Iter() {
		time.Sleep(time.Millisecond * 100)
	}
	if err := p.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
