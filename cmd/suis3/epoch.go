package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newEpochCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "epoch <value>",
		Short: "Record the byte store's current epoch on the catalog",
		Long: `Record the storage epoch reported by the external byte store. The
catalog stores the value for bookkeeping only; it never enforces expiry
against object records.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			epoch, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}
			return apiClient().SetEpoch(cmd.Context(), epoch)
		},
	}
}
