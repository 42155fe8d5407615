// Package memory is an in-process fixture store implementing the repository
// contracts. It backs service tests and local runs without a MongoDB
// instance, with the same id-assignment, ordering and replace semantics as
// the production store.
package memory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agrodesk/agrodesk/internal/domain/models"
)

func matches(query string, fields ...string) bool {
	needle := strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// sortNewestFirst orders by insertion sequence descending, which mirrors the
// created-on descending sort of the MongoDB store.
func sortNewestFirst[T any](items []T, id func(T) int) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) > id(items[j]) })
}

func notFound(kind string, id int) error {
	return fmt.Errorf("%s %d: %w", kind, id, models.ErrNotFound)
}
