//go:build unix

package main

import (
	"fmt"
	"os"

	"github.com/mentalisttraceur/poll/consts"
)

func main() {
	wrapper := NewWrapper()
	// Run exits through cli's ExitCoder handling for every outcome the
	// tool defines; anything that still comes back is unexpected.
	if err := wrapper.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(consts.ExitExecutionError)
	}
}
