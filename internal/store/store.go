package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when an update targets an identifier that does not
// resolve to a document of the requested kind.
var ErrNotFound = errors.New("document not found")

// StoreError wraps a connectivity or query execution failure of the backing
// database.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store: %s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

// FindOptions narrows a Find call. SortField, when set, sorts descending on
// that one field. Limit caps the result size; zero means no cap.
type FindOptions struct {
	SortField string
	Limit     int64
}

// DateCount is one calendar-day bucket of a time-series aggregation.
type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// ValueCount is one group of a group-by-value aggregation.
type ValueCount struct {
	Value string
	Count int64
}

// Store isolates handlers from the storage technology. Each entity kind maps
// to one collection; documents cross this boundary as plain maps with every
// identifier rendered as a string and every timestamp as a UTC time.Time.
type Store interface {
	Create(ctx context.Context, kind string, doc interface{}) (string, error)
	Find(ctx context.Context, kind string, filter map[string]interface{}, opts FindOptions) ([]map[string]interface{}, error)
	FindSubstring(ctx context.Context, kind string, fields []string, q string, limit int64) ([]map[string]interface{}, error)
	UpdateFields(ctx context.Context, kind, id string, patch map[string]interface{}) (map[string]interface{}, error)

	// The two fixed aggregation shapes; not a general query surface.
	CountByDay(ctx context.Context, kind, field string, since time.Time) ([]DateCount, error)
	CountByValue(ctx context.Context, kind, field string) ([]ValueCount, error)

	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
}

// toDocument flattens any bson-taggable value into a generic document.
func toDocument(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out := bson.M{}
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// normalizeDocument rewrites driver-native types into boundary types:
// ObjectIDs become hex strings and BSON datetimes become UTC time.Time, all
// the way down through nested maps and arrays.
func normalizeDocument(doc bson.M) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	case time.Time:
		return t.UTC()
	case bson.M:
		return normalizeDocument(t)
	case map[string]interface{}:
		return normalizeDocument(bson.M(t))
	case bson.D:
		return normalizeDocument(t.Map())
	case bson.A:
		items := make([]interface{}, len(t))
		for i, item := range t {
			items[i] = normalizeValue(item)
		}
		return items
	case []interface{}:
		items := make([]interface{}, len(t))
		for i, item := range t {
			items[i] = normalizeValue(item)
		}
		return items
	default:
		return v
	}
}
