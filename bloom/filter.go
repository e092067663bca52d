// Package bloom provides a probabilistic seen-hash filter used as a cheap
// duplicate pre-check before querying the archive.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter keyed by content hash.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a content hash as seen.
func (f *Filter) Add(hash string) {
	f.f.AddString(hash)
}

// Test returns true if the hash might have been seen.
// False positives are possible; false negatives are not, so a negative
// answer safely skips the archive lookup.
func (f *Filter) Test(hash string) bool {
	return f.f.TestString(hash)
}

// EstimatedCount returns the approximate number of hashes in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
