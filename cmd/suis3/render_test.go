package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suis3/catalog/internal/catalog"
)

func TestRenderBuckets(t *testing.T) {
	var buf bytes.Buffer
	renderBuckets(&buf, []catalog.BucketInfo{
		{Name: "photos", CreateTS: 1700000000000},
		{Name: "backups", CreateTS: 1700000001000},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "BUCKET NAME")
	assert.Contains(t, lines[1], "photos")
	assert.Contains(t, lines[2], "backups")
}

func TestRenderObjectsDetail(t *testing.T) {
	var buf bytes.Buffer
	renderObjectsDetail(&buf, []catalog.ObjectInfo{
		{URI: "2024/cat.png", Size: 500, ContentID: "cid1", EpochTill: 10, LastWriteTS: 1700000000000, Tags: []string{"pet", "cute"}},
	})

	out := buf.String()
	assert.Contains(t, out, "2024/cat.png")
	assert.Contains(t, out, "cid1")
	assert.Contains(t, out, "pet,cute")
	assert.Contains(t, out, "500")
}

func TestRenderRecord(t *testing.T) {
	var buf bytes.Buffer
	renderRecord(&buf, "cat.png", &catalog.BlobRecord{
		Size:        500,
		ContentID:   "cid1",
		EpochTill:   10,
		LastWriteTS: 1700000000000,
		Tags:        []string{"pet"},
	})

	out := buf.String()
	assert.Contains(t, out, "Object:")
	assert.Contains(t, out, "cat.png")
	assert.Contains(t, out, "Blob ID:")
	assert.Contains(t, out, "cid1")
}
