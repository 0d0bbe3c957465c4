package routes_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suis3/catalog/cmd/catalogd/routes"
	"github.com/suis3/catalog/common/logger"
	"github.com/suis3/catalog/internal/catalog"
	"github.com/suis3/catalog/internal/client"
	"github.com/suis3/catalog/internal/notify"
	"github.com/suis3/catalog/internal/store"
)

// startServer runs the full catalogd route tree on an httptest server and
// returns an API client pointed at it, plus the notifier for assertions.
func startServer(t *testing.T) (*client.Client, *notify.MemoryNotifier) {
	t.Helper()

	log := logger.New("error", "text")
	notifier := notify.NewMemoryNotifier()
	cat := catalog.New(notifier, log)

	e := echo.New()
	routes.Register(e, cat, store.NewNoopStore(), log)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return client.New(srv.URL), notifier
}

func TestBucketLifecycle(t *testing.T) {
	c, _ := startServer(t)
	ctx := context.Background()

	require.NoError(t, c.CreateBucket(ctx, "photos", []string{"2024"}))

	buckets, err := c.ListBuckets(ctx)
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, "photos", buckets[0].Name)
	assert.NotZero(t, buckets[0].CreateTS)

	tags, err := c.GetBucketTags(ctx, "photos")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024"}, tags)

	require.NoError(t, c.TagBucket(ctx, "photos", []string{"archive"}))
	tags, err = c.GetBucketTags(ctx, "photos")
	require.NoError(t, err)
	assert.Equal(t, []string{"archive"}, tags)

	require.NoError(t, c.DeleteBucketTags(ctx, "photos"))
	tags, err = c.GetBucketTags(ctx, "photos")
	require.NoError(t, err)
	assert.Empty(t, tags)

	require.NoError(t, c.DeleteBucket(ctx, "photos"))
	buckets, err = c.ListBuckets(ctx)
	require.NoError(t, err)
	assert.Empty(t, buckets)
}

func TestObjectLifecycle(t *testing.T) {
	c, _ := startServer(t)
	ctx := context.Background()

	require.NoError(t, c.CreateBucket(ctx, "photos", nil))
	require.NoError(t, c.CreateObject(ctx, "photos", "2024/cat.png", 500, "cid1", 10, []string{"pet"}))

	record, err := c.GetObject(ctx, "photos", "2024/cat.png")
	require.NoError(t, err)
	assert.Equal(t, uint64(500), record.Size)
	assert.Equal(t, "cid1", record.ContentID)
	assert.Equal(t, uint64(10), record.EpochTill)
	assert.Equal(t, []string{"pet"}, record.Tags)
	assert.NotZero(t, record.LastWriteTS)

	objects, err := c.ListBucketObjects(ctx, "photos")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "2024/cat.png", objects[0].URI)

	require.NoError(t, c.TagObject(ctx, "photos", "2024/cat.png", []string{"cute"}))
	tags, err := c.GetObjectTags(ctx, "photos", "2024/cat.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"cute"}, tags)

	require.NoError(t, c.DeleteObjectTags(ctx, "photos", "2024/cat.png"))
	tags, err = c.GetObjectTags(ctx, "photos", "2024/cat.png")
	require.NoError(t, err)
	assert.Empty(t, tags)

	require.NoError(t, c.DeleteObject(ctx, "photos", "2024/cat.png"))
	_, err = c.GetObject(ctx, "photos", "2024/cat.png")
	assertStatus(t, err, 404)
}

func TestUpsertReplaces(t *testing.T) {
	c, _ := startServer(t)
	ctx := context.Background()

	require.NoError(t, c.CreateBucket(ctx, "b", nil))
	require.NoError(t, c.CreateObject(ctx, "b", "o", 1, "c1", 1, nil))
	require.NoError(t, c.CreateObject(ctx, "b", "o", 2, "c2", 2, nil))

	objects, err := c.ListBucketObjects(ctx, "b")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "c2", objects[0].ContentID)
}

func TestFaultMapping(t *testing.T) {
	c, _ := startServer(t)
	ctx := context.Background()

	// Missing bucket -> 404
	_, err := c.ListBucketObjects(ctx, "nope")
	assertStatus(t, err, 404)
	assertStatus(t, c.DeleteBucket(ctx, "nope"), 404)
	_, err = c.GetBucketTags(ctx, "nope")
	assertStatus(t, err, 404)

	// Duplicate bucket -> 409
	require.NoError(t, c.CreateBucket(ctx, "b", nil))
	assertStatus(t, c.CreateBucket(ctx, "b", nil), 409)

	// Missing object -> 404
	_, err = c.GetObject(ctx, "b", "nope")
	assertStatus(t, err, 404)
	assertStatus(t, c.DeleteObject(ctx, "b", "nope"), 404)
}

func TestReadsEmitNotifications(t *testing.T) {
	c, notifier := startServer(t)
	ctx := context.Background()

	require.NoError(t, c.CreateBucket(ctx, "b", nil))
	require.NoError(t, c.CreateObject(ctx, "b", "o", 1, "c", 0, nil))
	notifier.Reset()

	_, err := c.ListBuckets(ctx)
	require.NoError(t, err)
	_, err = c.GetObject(ctx, "b", "o")
	require.NoError(t, err)

	events := notifier.Events()
	require.Len(t, events, 2)
	assert.Equal(t, notify.KindBucketList, events[0].Kind)
	assert.Equal(t, notify.KindObjectMeta, events[1].Kind)
}

func TestSetEpoch(t *testing.T) {
	c, _ := startServer(t)
	require.NoError(t, c.SetEpoch(context.Background(), 42))
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*client.APIError)
	require.True(t, ok, "expected *client.APIError, got %T: %v", err, err)
	assert.Equal(t, status, apiErr.StatusCode)
}
