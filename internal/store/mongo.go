package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the production Store backed by a MongoDB database.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (m *Mongo) Create(ctx context.Context, kind string, doc interface{}) (string, error) {
	data, err := toDocument(doc)
	if err != nil {
		return "", &StoreError{Op: "encode " + kind, Err: err}
	}
	data["created_at"] = time.Now().UTC()

	res, err := m.db.Collection(kind).InsertOne(ctx, data)
	if err != nil {
		return "", &StoreError{Op: "insert " + kind, Err: err}
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (m *Mongo) Find(ctx context.Context, kind string, filter map[string]interface{}, opts FindOptions) ([]map[string]interface{}, error) {
	findOpts := options.Find()
	if opts.SortField != "" {
		findOpts.SetSort(bson.D{{Key: opts.SortField, Value: -1}})
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	cursor, err := m.db.Collection(kind).Find(ctx, query, findOpts)
	if err != nil {
		return nil, &StoreError{Op: "find " + kind, Err: err}
	}
	defer cursor.Close(ctx)

	return m.collect(ctx, kind, cursor)
}

func (m *Mongo) FindSubstring(ctx context.Context, kind string, fields []string, q string, limit int64) ([]map[string]interface{}, error) {
	query := bson.M{}
	if q != "" {
		or := make([]bson.M, 0, len(fields))
		for _, f := range fields {
			or = append(or, bson.M{f: primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}})
		}
		query["$or"] = or
	}

	findOpts := options.Find()
	if limit > 0 {
		findOpts.SetLimit(limit)
	}

	cursor, err := m.db.Collection(kind).Find(ctx, query, findOpts)
	if err != nil {
		return nil, &StoreError{Op: "search " + kind, Err: err}
	}
	defer cursor.Close(ctx)

	return m.collect(ctx, kind, cursor)
}

func (m *Mongo) UpdateFields(ctx context.Context, kind, id string, patch map[string]interface{}) (map[string]interface{}, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range patch {
		set[k] = v
	}

	coll := m.db.Collection(kind)
	res, err := coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, &StoreError{Op: "update " + kind, Err: err}
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	var doc bson.M
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, &StoreError{Op: "reload " + kind, Err: err}
	}
	return normalizeDocument(doc), nil
}

func (m *Mongo) CountByDay(ctx context.Context, kind, field string, since time.Time) ([]DateCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{field: bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$" + field}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := m.db.Collection(kind).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, &StoreError{Op: "aggregate " + kind, Err: err}
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, &StoreError{Op: "aggregate " + kind, Err: err}
	}

	counts := make([]DateCount, len(rows))
	for i, row := range rows {
		counts[i] = DateCount{Date: row.ID, Count: row.Count}
	}
	return counts, nil
}

func (m *Mongo) CountByValue(ctx context.Context, kind, field string) ([]ValueCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := m.db.Collection(kind).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, &StoreError{Op: "aggregate " + kind, Err: err}
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, &StoreError{Op: "aggregate " + kind, Err: err}
	}

	counts := make([]ValueCount, len(rows))
	for i, row := range rows {
		counts[i] = ValueCount{Value: row.ID, Count: row.Count}
	}
	return counts, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	if err := m.db.Client().Ping(ctx, nil); err != nil {
		return &StoreError{Op: "ping", Err: err}
	}
	return nil
}

func (m *Mongo) Collections(ctx context.Context) ([]string, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, &StoreError{Op: "list collections", Err: err}
	}
	return names, nil
}

func (m *Mongo) collect(ctx context.Context, kind string, cursor *mongo.Cursor) ([]map[string]interface{}, error) {
	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, &StoreError{Op: "decode " + kind, Err: err}
	}
	docs := make([]map[string]interface{}, len(raw))
	for i, d := range raw {
		docs[i] = normalizeDocument(d)
	}
	return docs, nil
}
