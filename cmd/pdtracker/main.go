package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title PD Tracker Admin API
// @version 1.0.0
// @description Staff roster, professional-development records and certificates
// @BasePath /api
// @schemes http

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	root := &cobra.Command{
		Use:           "pdtracker",
		Short:         "PD tracker admin API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.AddCommand(serve, newMigrateCmd())
	return root
}
