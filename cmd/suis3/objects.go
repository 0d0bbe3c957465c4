package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newPutMetaCmd() *cobra.Command {
	var (
		size      uint64
		contentID string
		epochTill uint64
		tags      []string
	)
	cmd := &cobra.Command{
		Use:   "put-meta suis3://<bucket>/<object>",
		Short: "Record metadata for already-stored content",
		Long: `Register an object record pointing at content that already lives in
the external byte store. Re-registering an existing object name replaces
the record in full and moves it to the end of the listing order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, object, err := parseObjectURI(args[0])
			if err != nil {
				return err
			}
			if err := apiClient().CreateObject(cmd.Context(), bucket, object, size, contentID, epochTill, tags); err != nil {
				return err
			}
			fmt.Printf("Blob id: %s\n", contentID)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&size, "size", 0, "content size in bytes")
	cmd.Flags().StringVar(&contentID, "content-id", "", "blob id in the external byte store (required)")
	cmd.Flags().Uint64Var(&epochTill, "epoch-till", 0, "storage expiry epoch reported by the byte store")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "initial object tags")
	cmd.MarkFlagRequired("content-id")
	return cmd
}

func newStatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stat suis3://<bucket>/<object>",
		Short: "Show an object's record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, object, err := parseObjectURI(args[0])
			if err != nil {
				return err
			}
			record, err := apiClient().GetObject(cmd.Context(), bucket, object)
			if err != nil {
				return err
			}
			renderRecord(os.Stdout, object, record)
			return nil
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm suis3://<bucket>/<object>",
		Aliases: []string{"del"},
		Short:   "Delete an object record",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, object, err := parseObjectURI(args[0])
			if err != nil {
				return err
			}
			return apiClient().DeleteObject(cmd.Context(), bucket, object)
		},
	}
}
