// Package catalog implements a two-level namespace (bucket -> object) over
// an external content-addressed byte store. The catalog holds names, tags
// and timestamps; the bytes themselves are addressed by an opaque content
// identifier the catalog records but never resolves.
package catalog

import (
	"context"
	"sync"

	"github.com/suis3/catalog/common/logger"
	"github.com/suis3/catalog/internal/notify"
)

// Catalog is the whole namespace: an insertion-ordered registry of buckets
// plus the last storage epoch reported by the external store.
//
// A single mutex serializes every operation. The data model assumes no
// operation ever observes a partially applied mutation from another, so
// all entry points take the lock for their full duration. Notifications
// are published after the lock is released, from copies of the result.
type Catalog struct {
	mu      sync.Mutex
	epoch   uint64
	buckets *orderedMap[*bucket]

	notifier notify.Notifier
	log      *logger.Logger
}

// New creates an empty catalog. Read results are additionally published
// through notifier for out-of-band observers.
func New(notifier notify.Notifier, log *logger.Logger) *Catalog {
	return &Catalog{
		buckets:  newOrderedMap[*bucket](),
		notifier: notifier,
		log:      log,
	}
}

// SetEpoch unconditionally records the storage epoch reported by the
// external store. The value is informational: the catalog never enforces
// expiry against object records.
func (c *Catalog) SetEpoch(epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch = epoch
}

// Epoch returns the last recorded storage epoch.
func (c *Catalog) Epoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch
}

// CreateBucket registers a new bucket. nowMS becomes its immutable
// creation timestamp.
func (c *Catalog) CreateBucket(name string, tags []string, nowMS uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.buckets.has(name) {
		return ErrBucketAlreadyExists
	}
	c.buckets.set(name, newBucket(nowMS, tags))
	return nil
}

// DeleteBucket removes a bucket. Every child record is discarded with it;
// ownership makes the cascade a single map removal.
func (c *Catalog) DeleteBucket(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.buckets.delete(name) {
		return ErrNoSuchBucket
	}
	return nil
}

// ListBuckets returns every bucket in insertion order and publishes the
// same listing as a bucket_list event.
func (c *Catalog) ListBuckets(ctx context.Context) []BucketInfo {
	c.mu.Lock()
	infos := make([]BucketInfo, 0, c.buckets.len())
	c.buckets.each(func(name string, b *bucket) {
		infos = append(infos, BucketInfo{Name: name, CreateTS: b.createTS})
	})
	c.mu.Unlock()

	c.publish(ctx, notify.NewEvent(notify.KindBucketList, "", "", bucketListPayload{Buckets: infos}))
	return infos
}

// TagBucket replaces the bucket's entire tag sequence. Replacement is
// wholesale: the previous tags are gone regardless of overlap.
func (c *Catalog) TagBucket(name string, tags []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.buckets.get(name)
	if !ok {
		return ErrNoSuchBucket
	}
	b.tags = copyTags(tags)
	return nil
}

// GetBucketTags returns the bucket's tag sequence and publishes it as a
// bucket_tags event.
func (c *Catalog) GetBucketTags(ctx context.Context, name string) ([]string, error) {
	c.mu.Lock()
	b, ok := c.buckets.get(name)
	if !ok {
		c.mu.Unlock()
		return nil, ErrNoSuchBucket
	}
	tags := copyTags(b.tags)
	c.mu.Unlock()

	c.publish(ctx, notify.NewEvent(notify.KindBucketTags, name, "", tagsPayload{Tags: tags}))
	return tags, nil
}

// DeleteBucketTags replaces the bucket's tag sequence with an empty one.
func (c *Catalog) DeleteBucketTags(name string) error {
	return c.TagBucket(name, nil)
}

// CreateObject records metadata for an object. An existing record under
// the same name is replaced in full and moves to the end of the listing
// order; the operation is an idempotent upsert, never a duplicate fault.
func (c *Catalog) CreateObject(bucketName, objectName string, size uint64, contentID string, epochTill uint64, tags []string, nowMS uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.buckets.get(bucketName)
	if !ok {
		return ErrNoSuchBucket
	}

	b.children.set(objectName, &BlobRecord{
		Size:        size,
		Tags:        copyTags(tags),
		LastWriteTS: nowMS,
		ContentID:   contentID,
		EpochTill:   epochTill,
	})
	return nil
}

// GetObject returns a copy of the object's record and publishes it as an
// object_meta event.
func (c *Catalog) GetObject(ctx context.Context, bucketName, objectName string) (*BlobRecord, error) {
	c.mu.Lock()
	rec, err := c.lookupObject(bucketName, objectName)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	out := rec.clone()
	c.mu.Unlock()

	c.publish(ctx, notify.NewEvent(notify.KindObjectMeta, bucketName, objectName, out))
	return out, nil
}

// DeleteObject removes the object's record from its bucket.
func (c *Catalog) DeleteObject(bucketName, objectName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.buckets.get(bucketName)
	if !ok {
		return ErrNoSuchBucket
	}
	if !b.children.delete(objectName) {
		return ErrNoSuchObject
	}
	return nil
}

// TagObject replaces the object's entire tag sequence, leaving every other
// record field untouched.
func (c *Catalog) TagObject(bucketName, objectName string, tags []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, err := c.lookupObject(bucketName, objectName)
	if err != nil {
		return err
	}
	rec.Tags = copyTags(tags)
	return nil
}

// GetObjectTags returns the object's tag sequence and publishes it as an
// object_tags event.
func (c *Catalog) GetObjectTags(ctx context.Context, bucketName, objectName string) ([]string, error) {
	c.mu.Lock()
	rec, err := c.lookupObject(bucketName, objectName)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	tags := copyTags(rec.Tags)
	c.mu.Unlock()

	c.publish(ctx, notify.NewEvent(notify.KindObjectTags, bucketName, objectName, tagsPayload{Tags: tags}))
	return tags, nil
}

// DeleteObjectTags replaces the object's tag sequence with an empty one.
func (c *Catalog) DeleteObjectTags(bucketName, objectName string) error {
	return c.TagObject(bucketName, objectName, nil)
}

// ListBucketObjects returns one descriptor per object in insertion order
// and publishes the listing as an object_list event.
func (c *Catalog) ListBucketObjects(ctx context.Context, bucketName string) ([]ObjectInfo, error) {
	c.mu.Lock()
	b, ok := c.buckets.get(bucketName)
	if !ok {
		c.mu.Unlock()
		return nil, ErrNoSuchBucket
	}
	infos := make([]ObjectInfo, 0, b.children.len())
	b.children.each(func(name string, rec *BlobRecord) {
		infos = append(infos, ObjectInfo{
			URI:         name,
			Size:        rec.Size,
			Tags:        copyTags(rec.Tags),
			LastWriteTS: rec.LastWriteTS,
			ContentID:   rec.ContentID,
			EpochTill:   rec.EpochTill,
		})
	})
	c.mu.Unlock()

	c.publish(ctx, notify.NewEvent(notify.KindObjectList, bucketName, "", objectListPayload{Objects: infos}))
	return infos, nil
}

// lookupObject resolves bucket then object. Callers hold the lock.
func (c *Catalog) lookupObject(bucketName, objectName string) (*BlobRecord, error) {
	b, ok := c.buckets.get(bucketName)
	if !ok {
		return nil, ErrNoSuchBucket
	}
	rec, ok := b.children.get(objectName)
	if !ok {
		return nil, ErrNoSuchObject
	}
	return rec, nil
}

func (c *Catalog) publish(ctx context.Context, event notify.Event) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.Publish(ctx, event); err != nil {
		c.log.Warn("event publish failed", "kind", event.Kind, "error", err)
	}
}

// Wire payload shapes for list and tag events.

type bucketListPayload struct {
	Buckets []BucketInfo `json:"buckets"`
}

type tagsPayload struct {
	Tags []string `json:"tags"`
}

type objectListPayload struct {
	Objects []ObjectInfo `json:"objects"`
}
