package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newListAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "la",
		Short: "List all buckets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			buckets, err := apiClient().ListBuckets(cmd.Context())
			if err != nil {
				return err
			}
			renderBuckets(os.Stdout, buckets)
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [suis3://<bucket>]",
		Short: "List all buckets, or all objects of a bucket",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				buckets, err := apiClient().ListBuckets(cmd.Context())
				if err != nil {
					return err
				}
				renderBuckets(os.Stdout, buckets)
				return nil
			}

			bucket, err := parseBucketURI(args[0])
			if err != nil {
				return err
			}
			objects, err := apiClient().ListBucketObjects(cmd.Context(), bucket)
			if err != nil {
				return err
			}
			renderObjects(os.Stdout, objects)
			return nil
		},
	}
}

func newDetailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ll [suis3://<bucket>]",
		Short: "List object details of a bucket",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				buckets, err := apiClient().ListBuckets(cmd.Context())
				if err != nil {
					return err
				}
				renderBuckets(os.Stdout, buckets)
				return nil
			}

			bucket, err := parseBucketURI(args[0])
			if err != nil {
				return err
			}
			objects, err := apiClient().ListBucketObjects(cmd.Context(), bucket)
			if err != nil {
				return err
			}
			renderObjectsDetail(os.Stdout, objects)
			return nil
		},
	}
}

func newCreateBucketCmd() *cobra.Command {
	var tags []string
	cmd := &cobra.Command{
		Use:   "mb suis3://<bucket>",
		Short: "Create a bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, err := parseBucketURI(args[0])
			if err != nil {
				return err
			}
			return apiClient().CreateBucket(cmd.Context(), bucket, tags)
		},
	}
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "initial bucket tags")
	return cmd
}

func newDeleteBucketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rb suis3://<bucket>",
		Short: "Delete a bucket and all of its object records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, err := parseBucketURI(args[0])
			if err != nil {
				return err
			}
			return apiClient().DeleteBucket(cmd.Context(), bucket)
		},
	}
}
