package catalog

// Snapshot is a point-in-time dump of the whole catalog, ordered the same
// way listings are. It is the unit the store package persists and the
// daemon restores on boot.
type Snapshot struct {
	Epoch   uint64           `json:"epoch"`
	Buckets []BucketSnapshot `json:"buckets"`
}

// BucketSnapshot is one bucket with its children in insertion order.
type BucketSnapshot struct {
	Name     string           `json:"name"`
	CreateTS uint64           `json:"create_ts"`
	Tags     []string         `json:"tags"`
	Objects  []ObjectSnapshot `json:"objects"`
}

// ObjectSnapshot is one object record keyed by its name.
type ObjectSnapshot struct {
	Name   string     `json:"name"`
	Record BlobRecord `json:"record"`
}

// Snapshot captures the catalog state under the lock.
func (c *Catalog) Snapshot() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := &Snapshot{
		Epoch:   c.epoch,
		Buckets: make([]BucketSnapshot, 0, c.buckets.len()),
	}
	c.buckets.each(func(name string, b *bucket) {
		bs := BucketSnapshot{
			Name:     name,
			CreateTS: b.createTS,
			Tags:     copyTags(b.tags),
			Objects:  make([]ObjectSnapshot, 0, b.children.len()),
		}
		b.children.each(func(objName string, rec *BlobRecord) {
			bs.Objects = append(bs.Objects, ObjectSnapshot{Name: objName, Record: *rec.clone()})
		})
		snap.Buckets = append(snap.Buckets, bs)
	})
	return snap
}

// Restore replaces the catalog state with the snapshot's. Insertion order
// follows the snapshot's slice order, so a save/load round trip preserves
// listing order exactly.
func (c *Catalog) Restore(snap *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch = snap.Epoch
	c.buckets = newOrderedMap[*bucket]()
	for _, bs := range snap.Buckets {
		b := newBucket(bs.CreateTS, bs.Tags)
		for _, obj := range bs.Objects {
			rec := obj.Record
			b.children.set(obj.Name, rec.clone())
		}
		c.buckets.set(bs.Name, b)
	}
}
