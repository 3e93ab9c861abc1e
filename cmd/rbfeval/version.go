package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/LynnColeArt/rbfnet"
)

func (c *cli) runVersion(cmd *cobra.Command, _ []string) error {
	version, sum := rbfnet.Version()
	if version == "" {
		version = "(devel)"
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "rbfeval %s %s\n", version, sum)
	fmt.Fprintf(w, "%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(w, rbfnet.GetCPUInfo())
	return nil
}
