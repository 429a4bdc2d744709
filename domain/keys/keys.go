package keys

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxFeedPaging is used for prefixing marketplace feed paging snapshots
	PfxFeedPaging = "feedPaging"
	// PfxDismissals is used for prefixing dismissed announcement ids
	PfxDismissals = "dismissals"
)

// GetPrefix extracts the prefix of a key, used for metric tagging so key
// cardinality stays bounded.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join([]string{s[0], s[1]}, ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}

// MD5 hashes the data with md5
func MD5(data string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// CustomKey joins key components with the specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey joins redis key components with ":"
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}
