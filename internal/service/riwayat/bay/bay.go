// Package bay derives equipment bay tags from action items.
//
// Equipment names follow the "<type> <section> <bay>" convention, for example
// "PMS BUS A TRAFO 1". The bay is not stored separately; it is taken to be the
// last two whitespace-separated tokens of the name ("TRAFO 1").
package bay

import (
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/manuver-backend/internal/domain"
)

// tagTokens is the number of trailing name tokens that form a bay tag.
const tagTokens = 2

// Extract returns the bay tag of an equipment name. Names with fewer than two
// tokens yield what is there; an empty name yields "".
func Extract(equipmentName string) string {
	fields := strings.Fields(equipmentName)
	if len(fields) > tagTokens {
		fields = fields[len(fields)-tagTokens:]
	}
	return strings.Join(fields, " ")
}

// ForItems returns the unique bay tags of items in order of first appearance.
// Separator rows and items without an equipment name are skipped.
func ForItems(items []domain.ActionItem) []string {
	tags := make([]string, 0, len(items))
	for _, it := range items {
		if it.IsSeparator {
			continue
		}
		tag := Extract(it.EquipmentName)
		if tag == "" || slices.Contains(tags, tag) {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// Index caches the bay set of each record. An absent entry means the record's
// items have not been fetched yet, which is different from an empty set.
type Index struct {
	mu   sync.RWMutex
	bays map[uuid.UUID][]string
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{bays: make(map[uuid.UUID][]string)}
}

// Set derives and stores the bay set of one record.
func (x *Index) Set(recordID uuid.UUID, items []domain.ActionItem) []string {
	tags := ForItems(items)
	x.mu.Lock()
	x.bays[recordID] = tags
	x.mu.Unlock()
	return tags
}

// Get returns the cached bay set and whether the record is known.
func (x *Index) Get(recordID uuid.UUID) ([]string, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	tags, ok := x.bays[recordID]
	return tags, ok
}

// Invalidate drops the cached set of one record.
func (x *Index) Invalidate(recordID uuid.UUID) {
	x.mu.Lock()
	delete(x.bays, recordID)
	x.mu.Unlock()
}

// Reset drops every cached set.
func (x *Index) Reset() {
	x.mu.Lock()
	x.bays = make(map[uuid.UUID][]string)
	x.mu.Unlock()
}

// Snapshot returns a copy of the index safe to hand to the filter pipeline.
func (x *Index) Snapshot() map[uuid.UUID][]string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make(map[uuid.UUID][]string, len(x.bays))
	for id, tags := range x.bays {
		out[id] = slices.Clone(tags)
	}
	return out
}

// Tags returns every known bay tag, sorted, for filter pickers.
func (x *Index) Tags() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()
	var all []string
	for _, tags := range x.bays {
		for _, t := range tags {
			if !slices.Contains(all, t) {
				all = append(all, t)
			}
		}
	}
	slices.Sort(all)
	return all
}
