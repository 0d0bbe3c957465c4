package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/suis3/catalog/internal/catalog"
)

// formatMS renders a millisecond timestamp in local time.
func formatMS(ms uint64) string {
	return time.UnixMilli(int64(ms)).Local().Format("2006-01-02 15:04:05")
}

func renderBuckets(w io.Writer, buckets []catalog.BucketInfo) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tBUCKET NAME")
	for _, b := range buckets {
		fmt.Fprintf(tw, "%s\t%s\n", formatMS(b.CreateTS), b.Name)
	}
	tw.Flush()
}

func renderObjects(w io.Writer, objects []catalog.ObjectInfo) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "URI\tTIME")
	for _, o := range objects {
		fmt.Fprintf(tw, "%s\t%s\n", o.URI, formatMS(o.LastWriteTS))
	}
	tw.Flush()
}

func renderObjectsDetail(w io.Writer, objects []catalog.ObjectInfo) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "URI\tTIME\tSIZE\tBLOB ID\tTILL EPOCH\tTAGS")
	for _, o := range objects {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%s\n",
			o.URI, formatMS(o.LastWriteTS), o.Size, o.ContentID, o.EpochTill, strings.Join(o.Tags, ","))
	}
	tw.Flush()
}

func renderRecord(w io.Writer, object string, rec *catalog.BlobRecord) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "Object:\t%s\n", object)
	fmt.Fprintf(tw, "Size:\t%d\n", rec.Size)
	fmt.Fprintf(tw, "Last write:\t%s\n", formatMS(rec.LastWriteTS))
	fmt.Fprintf(tw, "Blob ID:\t%s\n", rec.ContentID)
	fmt.Fprintf(tw, "Till epoch:\t%d\n", rec.EpochTill)
	fmt.Fprintf(tw, "Tags:\t%s\n", strings.Join(rec.Tags, ","))
	tw.Flush()
}
