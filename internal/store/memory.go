package store

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Store used by tests and local development. It keeps
// documents already normalized (string ids, UTC time.Time values) so reads
// behave exactly like the Mongo implementation's boundary.
type Memory struct {
	mu          sync.Mutex
	collections map[string][]map[string]interface{}
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]map[string]interface{})}
}

func (m *Memory) Create(ctx context.Context, kind string, doc interface{}) (string, error) {
	data, err := toDocument(doc)
	if err != nil {
		return "", &StoreError{Op: "encode " + kind, Err: err}
	}

	normalized := normalizeDocument(data)
	id := primitive.NewObjectID().Hex()
	normalized["_id"] = id
	normalized["created_at"] = time.Now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[kind] = append(m.collections[kind], normalized)
	return id, nil
}

func (m *Memory) Find(ctx context.Context, kind string, filter map[string]interface{}, opts FindOptions) ([]map[string]interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []map[string]interface{}
	for _, doc := range m.collections[kind] {
		if matchesFilter(doc, filter) {
			matched = append(matched, copyDocument(doc))
		}
	}

	if opts.SortField != "" {
		field := opts.SortField
		sort.SliceStable(matched, func(i, j int) bool {
			return lessValue(matched[j][field], matched[i][field]) // descending
		})
	}
	if opts.Limit > 0 && int64(len(matched)) > opts.Limit {
		matched = matched[:opts.Limit]
	}
	return matched, nil
}

func (m *Memory) FindSubstring(ctx context.Context, kind string, fields []string, q string, limit int64) ([]map[string]interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	needle := strings.ToLower(q)
	var matched []map[string]interface{}
	for _, doc := range m.collections[kind] {
		if q == "" || containsAny(doc, fields, needle) {
			matched = append(matched, copyDocument(doc))
		}
		if limit > 0 && int64(len(matched)) == limit {
			break
		}
	}
	return matched, nil
}

func (m *Memory) UpdateFields(ctx context.Context, kind, id string, patch map[string]interface{}) (map[string]interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.collections[kind] {
		if doc["_id"] != id {
			continue
		}
		for k, v := range patch {
			doc[k] = normalizeValue(v)
		}
		doc["updated_at"] = time.Now().UTC()
		return copyDocument(doc), nil
	}
	return nil, ErrNotFound
}

func (m *Memory) CountByDay(ctx context.Context, kind, field string, since time.Time) ([]DateCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buckets := map[string]int64{}
	for _, doc := range m.collections[kind] {
		t, ok := doc[field].(time.Time)
		if !ok || t.Before(since) {
			continue
		}
		buckets[t.UTC().Format("2006-01-02")]++
	}

	counts := make([]DateCount, 0, len(buckets))
	for date, n := range buckets {
		counts = append(counts, DateCount{Date: date, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Date < counts[j].Date })
	return counts, nil
}

func (m *Memory) CountByValue(ctx context.Context, kind, field string) ([]ValueCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	groups := map[string]int64{}
	for _, doc := range m.collections[kind] {
		if v, ok := doc[field].(string); ok {
			groups[v]++
		}
	}

	counts := make([]ValueCount, 0, len(groups))
	for value, n := range groups {
		counts = append(counts, ValueCount{Value: value, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Value < counts[j].Value
	})
	return counts, nil
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) Collections(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.collections))
	for kind := range m.collections {
		names = append(names, kind)
	}
	sort.Strings(names)
	return names, nil
}

func matchesFilter(doc, filter map[string]interface{}) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}

func containsAny(doc map[string]interface{}, fields []string, needle string) bool {
	for _, f := range fields {
		if s, ok := doc[f].(string); ok && strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func copyDocument(doc map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func lessValue(a, b interface{}) bool {
	switch at := a.(type) {
	case time.Time:
		bt, ok := b.(time.Time)
		return ok && at.Before(bt)
	case string:
		bs, ok := b.(string)
		return ok && at < bs
	case int:
		return lessValue(float64(at), b)
	case int32:
		return lessValue(float64(at), b)
	case int64:
		return lessValue(float64(at), b)
	case float64:
		switch bt := b.(type) {
		case int:
			return at < float64(bt)
		case int32:
			return at < float64(bt)
		case int64:
			return at < float64(bt)
		case float64:
			return at < bt
		}
	}
	return false
}
