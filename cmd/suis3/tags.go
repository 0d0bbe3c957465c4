package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suis3/catalog/internal/client"
)

func newTagCmd() *cobra.Command {
	tagCmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage bucket and object tags",
		Long: `Manage the tag sequence of a bucket or an object.

Tag updates are wholesale: 'tag set' replaces the entire sequence with the
given tags and 'tag clear' replaces it with an empty one. There is no
incremental add/remove of individual tags.`,
	}

	listCmd := &cobra.Command{
		Use:     "ls suis3://<bucket>[/<object>]",
		Aliases: []string{"list"},
		Short:   "List tags of a bucket or object",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, object, err := client.ParseURI(args[0])
			if err != nil {
				return err
			}

			var tags []string
			if object == "" {
				tags, err = apiClient().GetBucketTags(cmd.Context(), bucket)
			} else {
				tags, err = apiClient().GetObjectTags(cmd.Context(), bucket, object)
			}
			if err != nil {
				return err
			}
			for _, tag := range tags {
				fmt.Println(tag)
			}
			return nil
		},
	}
	tagCmd.AddCommand(listCmd)

	setCmd := &cobra.Command{
		Use:   "set suis3://<bucket>[/<object>] <tag>...",
		Short: "Replace all tags of a bucket or object",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, object, err := client.ParseURI(args[0])
			if err != nil {
				return err
			}

			tags := args[1:]
			if object == "" {
				return apiClient().TagBucket(cmd.Context(), bucket, tags)
			}
			return apiClient().TagObject(cmd.Context(), bucket, object, tags)
		},
	}
	tagCmd.AddCommand(setCmd)

	clearCmd := &cobra.Command{
		Use:     "clear suis3://<bucket>[/<object>]",
		Aliases: []string{"rm", "del"},
		Short:   "Remove all tags of a bucket or object",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, object, err := client.ParseURI(args[0])
			if err != nil {
				return err
			}

			if object == "" {
				return apiClient().DeleteBucketTags(cmd.Context(), bucket)
			}
			return apiClient().DeleteObjectTags(cmd.Context(), bucket, object)
		},
	}
	tagCmd.AddCommand(clearCmd)

	return tagCmd
}
