package catalog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	cat, _ := newTestCatalog()
	ctx := context.Background()

	cat.SetEpoch(77)
	require.NoError(t, cat.CreateBucket("z-bucket", []string{"late"}, 10))
	require.NoError(t, cat.CreateBucket("a-bucket", nil, 20))
	require.NoError(t, cat.CreateObject("z-bucket", "obj2", 2, "c2", 5, []string{"t"}, 30))
	require.NoError(t, cat.CreateObject("z-bucket", "obj1", 1, "c1", 4, nil, 40))
	// Overwrite moves obj2 to the end
	require.NoError(t, cat.CreateObject("z-bucket", "obj2", 22, "c22", 6, nil, 50))

	snap := cat.Snapshot()

	// Serialize/deserialize, as the store does
	data, err := json.Marshal(snap)
	require.NoError(t, err)
	var loaded Snapshot
	require.NoError(t, json.Unmarshal(data, &loaded))

	restored, _ := newTestCatalog()
	restored.Restore(&loaded)

	assert.Equal(t, uint64(77), restored.Epoch())

	buckets := restored.ListBuckets(ctx)
	assert.Equal(t, []string{"z-bucket", "a-bucket"}, bucketNames(buckets))
	assert.Equal(t, uint64(10), buckets[0].CreateTS)

	tags, err := restored.GetBucketTags(ctx, "z-bucket")
	require.NoError(t, err)
	assert.Equal(t, []string{"late"}, tags)

	objects, err := restored.ListBucketObjects(ctx, "z-bucket")
	require.NoError(t, err)
	assert.Equal(t, []string{"obj1", "obj2"}, objectURIs(objects))

	rec, err := restored.GetObject(ctx, "z-bucket", "obj2")
	require.NoError(t, err)
	assert.Equal(t, uint64(22), rec.Size)
	assert.Equal(t, "c22", rec.ContentID)
	assert.Equal(t, uint64(50), rec.LastWriteTS)
}

func TestRestoreReplacesExistingState(t *testing.T) {
	cat, _ := newTestCatalog()
	ctx := context.Background()

	require.NoError(t, cat.CreateBucket("old", nil, 1))

	cat.Restore(&Snapshot{
		Epoch: 3,
		Buckets: []BucketSnapshot{
			{Name: "new", CreateTS: 2, Tags: []string{"x"}},
		},
	})

	buckets := cat.ListBuckets(ctx)
	assert.Equal(t, []string{"new"}, bucketNames(buckets))
	assert.Equal(t, uint64(3), cat.Epoch())
}

func TestSnapshotIsDetached(t *testing.T) {
	cat, _ := newTestCatalog()

	require.NoError(t, cat.CreateBucket("b", []string{"t"}, 1))
	require.NoError(t, cat.CreateObject("b", "o", 1, "c", 0, []string{"a"}, 10))

	snap := cat.Snapshot()
	snap.Buckets[0].Tags[0] = "mutated"
	snap.Buckets[0].Objects[0].Record.Tags[0] = "mutated"

	tags, err := cat.GetBucketTags(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"t"}, tags)

	rec, err := cat.GetObject(context.Background(), "b", "o")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, rec.Tags)
}
