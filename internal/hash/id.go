// Package hash provides buffer name identifiers for in-memory lookups.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given buffer name. Decoded blobs key
// their name index by this value so repeated lookups avoid string hashing.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
