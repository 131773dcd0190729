package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aayushbajaj/keyoverlay/internal/keys"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys [query]",
		Short: "List key names usable in the config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			names := keys.Filter(query)
			if len(names) == 0 {
				return fmt.Errorf("no key matches %q", query)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range names {
				code, _ := keys.Lookup(name)
				fmt.Fprintf(w, "%s\t%d\n", name, code)
			}
			return w.Flush()
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "keyoverlay %s\n", Version)
		},
	}
}
