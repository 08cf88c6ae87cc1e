package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hassaan217/HeartGuard-AI/internal/form"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List sample patient profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, p := range form.Profiles() {
			snap, _ := form.Sample(p)
			fmt.Fprintf(out, "%s\n", p)
			renderSnapshot(out, snap, form.Completion(snap))
			fmt.Fprintln(out)
		}
		return nil
	},
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List form fields, bounds and categorical encodings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderFields(cmd.OutOrStdout())
		return nil
	},
}
