// Command geocell inspects, converts and packs sphere cell ids.
package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/geocell/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
