package catalog

import "errors"

// Fault taxonomy. All faults are terminal and caller-caused: every
// existence check runs before any write, so a failed operation leaves the
// catalog untouched.
var (
	// ErrNoSuchBucket is returned when the referenced bucket name is not
	// present in the root registry.
	ErrNoSuchBucket = errors.New("no such bucket")

	// ErrBucketAlreadyExists is returned by CreateBucket for a name that is
	// already registered.
	ErrBucketAlreadyExists = errors.New("bucket already exists")

	// ErrNoSuchObject is returned when the referenced object name is not
	// present in the bucket.
	ErrNoSuchObject = errors.New("no such object")

	// ErrObjectAlreadyExists is reserved for duplicate-object creation.
	// CreateObject upserts and never returns it; the variant is kept so the
	// contract can be tightened without a wire change.
	ErrObjectAlreadyExists = errors.New("object already exists")
)
