// Package cache holds the report cache backends. Entries never expire; they
// live until a mutation invalidates their category.
package cache

import "strings"

const (
	keyPrefix        = "report:"
	generationPrefix = "report-gen:"
)

// Key builds the storage key for a category and optional filter.
func Key(category, filter string) string {
	if filter == "" {
		return keyPrefix + category
	}
	return keyPrefix + category + ":" + filter
}

// inCategory reports whether key belongs to category.
func inCategory(key, category string) bool {
	base := Key(category, "")
	return key == base || strings.HasPrefix(key, base+":")
}

// generationKey names the counter guarding a category's entries. It sits
// outside keyPrefix so Clear never deletes it.
func generationKey(category string) string {
	return generationPrefix + category
}
