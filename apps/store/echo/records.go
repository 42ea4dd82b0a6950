package storeapi

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Collections served by the store. Anything else is a 404.
var Collections = []string{"students", "sections", "results"}

type (
	// Record is a schemaless store row; the store never inspects fields
	// beyond "id".
	Record map[string]interface{}

	// Collection is an ordered, locked table of records. Insertion order
	// is preserved; list calls may re-sort a copy via _sort/_order.
	Collection struct {
		sync.RWMutex
		name    string
		records []Record
	}

	DB struct {
		collections map[string]*Collection
	}
)

func NewDB() *DB {
	db := &DB{collections: make(map[string]*Collection, len(Collections))}
	for _, name := range Collections {
		db.collections[name] = &Collection{name: name}
	}
	return db
}

func (db *DB) Collection(name string) *Collection {
	return db.collections[name]
}

func (r Record) id() string {
	return stringify(r["id"])
}

// stringify normalizes a record field for id comparison and sorting;
// seeded fixtures may carry numeric ids while created records get uuids.
func stringify(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

func (c *Collection) List(sortField string, descending bool) []Record {
	c.RLock()
	defer c.RUnlock()

	records := make([]Record, len(c.records))
	copy(records, c.records)

	if sortField != "" {
		sort.SliceStable(records, func(i, j int) bool {
			less := stringify(records[i][sortField]) < stringify(records[j][sortField])
			if descending {
				return !less
			}
			return less
		})
	}
	return records
}

func (c *Collection) Create(rec Record) Record {
	c.Lock()
	defer c.Unlock()

	rec["id"] = uuid.New().String()
	c.records = append(c.records, rec)
	return rec
}

// Update replaces, by id, every field of the matching record except its id.
func (c *Collection) Update(id string, rec Record) (Record, bool) {
	c.Lock()
	defer c.Unlock()

	for i, existing := range c.records {
		if existing.id() == id {
			rec["id"] = existing["id"]
			c.records[i] = rec
			return rec, true
		}
	}
	return nil, false
}

func (c *Collection) Delete(id string) bool {
	c.Lock()
	defer c.Unlock()

	for i, existing := range c.records {
		if existing.id() == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return true
		}
	}
	return false
}
