package catalog

// BlobRecord is the metadata for one stored object: where its bytes live
// in the external store and what we know about them. The record is always
// written as a unit; only the tag-replace operations touch Tags alone.
type BlobRecord struct {
	// Byte length of the content at last write.
	Size uint64 `json:"size"`

	// Free-form labels. Order is preserved, duplicates are allowed.
	Tags []string `json:"tags"`

	// Milliseconds since epoch of the most recent create/overwrite.
	LastWriteTS uint64 `json:"last_write_ts"`

	// Opaque identifier into the external byte store. Never resolved or
	// validated here.
	ContentID string `json:"content_id"`

	// The external store's expiry epoch, recorded verbatim. Expiry is not
	// enforced by the catalog.
	EpochTill uint64 `json:"epoch_till"`
}

// bucket holds one bucket's contents. Instances are owned exclusively by
// the catalog root; deleting the root entry discards the bucket and every
// child record as a unit.
type bucket struct {
	createTS uint64
	tags     []string
	children *orderedMap[*BlobRecord]
}

func newBucket(createTS uint64, tags []string) *bucket {
	return &bucket{
		createTS: createTS,
		tags:     copyTags(tags),
		children: newOrderedMap[*BlobRecord](),
	}
}

// BucketInfo is one entry of a bucket listing.
type BucketInfo struct {
	Name     string `json:"name"`
	CreateTS uint64 `json:"create_ts"`
}

// ObjectInfo is one entry of a bucket-objects listing. URI is the object
// name within the bucket; the remaining fields mirror BlobRecord.
type ObjectInfo struct {
	URI         string   `json:"uri"`
	Size        uint64   `json:"size"`
	Tags        []string `json:"tags"`
	LastWriteTS uint64   `json:"last_write_ts"`
	ContentID   string   `json:"content_id"`
	EpochTill   uint64   `json:"epoch_till"`
}

func copyTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

func (r *BlobRecord) clone() *BlobRecord {
	return &BlobRecord{
		Size:        r.Size,
		Tags:        copyTags(r.Tags),
		LastWriteTS: r.LastWriteTS,
		ContentID:   r.ContentID,
		EpochTill:   r.EpochTill,
	}
}
