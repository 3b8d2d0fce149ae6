// Package cmd holds the go-dep command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// envFiles are the .env files loaded before configuration is read.
var envFiles []string

// NewRootCmd builds the go-dep command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "go-dep",
		Short: "Typed dependency registry demo",
		Long: `go-dep registers services by interface type and hands out typed
handles to them. Run "demo" for the wiring example or "serve" for the
HTTP API backed by the same registry.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringSliceVarP(&envFiles, "env", "e", nil, "env files to load (default: .env)")

	root.AddCommand(newDemoCmd(), newServeCmd())
	return root
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "go-dep: %v\n", err)
		os.Exit(1)
	}
}
