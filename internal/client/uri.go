package client

import (
	"fmt"
	"regexp"
	"strings"
)

// URI grammar for catalog addresses: suis3://<bucket>[/<object>].
// Bucket names are a restricted character set; object names may contain
// slashes, which the catalog treats as opaque characters, not hierarchy.
var uriPattern = regexp.MustCompile(`^[sS][uU][iI][sS]3://(?P<bucket>[A-Za-z0-9\-\._]+)(?P<object>[A-Za-z0-9\-\._/]*)$`)

// ParseURI splits a suis3:// URI into bucket and object. The object part
// is empty for bucket-only URIs. A leading slash on the object part is
// stripped; the remainder is the object name as stored.
func ParseURI(uri string) (bucket, object string, err error) {
	m := uriPattern.FindStringSubmatch(uri)
	if m == nil {
		return "", "", fmt.Errorf("invalid suis3 URI: %q", uri)
	}

	bucket = m[uriPattern.SubexpIndex("bucket")]
	object = strings.TrimPrefix(m[uriPattern.SubexpIndex("object")], "/")
	return bucket, object, nil
}
