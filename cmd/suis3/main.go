// suis3 is the command-line client for catalogd. It mirrors the classic
// s3cmd verb set (mb, rb, ls, la, ll, rm, tag) over suis3:// URIs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suis3/catalog/internal/client"
)

var endpoint string

func main() {
	rootCmd := &cobra.Command{
		Use:   "suis3",
		Short: "Catalog client for the suis3 object namespace",
		Long: `suis3 manages buckets and object metadata in a catalogd instance.

Addresses use the suis3:// scheme:
  suis3://<bucket>            a bucket
  suis3://<bucket>/<object>   an object within a bucket

Examples:
  suis3 mb suis3://photos
  suis3 put-meta suis3://photos/cat.png --size 500 --content-id cid1 --epoch-till 10
  suis3 ll suis3://photos
  suis3 tag set suis3://photos/cat.png pet cute`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", defaultEndpoint(), "catalogd base URL (env SUIS3_ENDPOINT)")

	rootCmd.AddCommand(
		newListAllCmd(),
		newListCmd(),
		newDetailCmd(),
		newCreateBucketCmd(),
		newDeleteBucketCmd(),
		newPutMetaCmd(),
		newStatCmd(),
		newRemoveCmd(),
		newTagCmd(),
		newEpochCmd(),
		newWatchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultEndpoint() string {
	if v := os.Getenv("SUIS3_ENDPOINT"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func apiClient() *client.Client {
	return client.New(endpoint)
}

// parseBucketURI requires a bucket-only URI.
func parseBucketURI(uri string) (string, error) {
	bucket, object, err := client.ParseURI(uri)
	if err != nil {
		return "", err
	}
	if object != "" {
		return "", fmt.Errorf("expected a bucket URI, got an object: %q", uri)
	}
	return bucket, nil
}

// parseObjectURI requires a full bucket/object URI.
func parseObjectURI(uri string) (bucket, object string, err error) {
	bucket, object, err = client.ParseURI(uri)
	if err != nil {
		return "", "", err
	}
	if object == "" {
		return "", "", fmt.Errorf("expected an object URI, got a bucket: %q", uri)
	}
	return bucket, object, nil
}
