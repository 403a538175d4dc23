// File: database/repository/blockrule/blockruleMongoCrud.go
package blockRuleRepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"roofline/models"
)

// ErrNotFound is returned when no rule matches the given id.
var ErrNotFound = errors.New("block rule not found")

func (r *mongoBlockRuleRepo) List(ctx context.Context, f Filter) ([]models.BlockRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if f.Scope != nil {
		if *f.Scope == "" {
			// All-regions rules store no state field at all.
			filter["state"] = bson.M{"$in": bson.A{nil, ""}}
		} else {
			filter["state"] = *f.Scope
		}
	}
	if f.DateFrom != "" || f.DateTo != "" {
		dateRange := bson.M{}
		if f.DateFrom != "" {
			dateRange["$gte"] = f.DateFrom
		}
		if f.DateTo != "" {
			dateRange["$lt"] = f.DateTo
		}
		filter["date"] = dateRange
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []models.BlockRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// Create inserts a rule, replacing any client-generated temporary id with
// a server-assigned one.
func (r *mongoBlockRuleRepo) Create(ctx context.Context, rule *models.BlockRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rule.ID == "" || strings.HasPrefix(rule.ID, models.TempIDPrefix) {
		rule.ID = uuid.New().String()
	}
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = time.Now().UTC()
	}
	if _, err := r.coll.InsertOne(ctx, rule); err != nil {
		return fmt.Errorf("failed to insert block rule: %w", err)
	}
	return nil
}

func (r *mongoBlockRuleRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBefore purges rules dated strictly before the given date. Past
// rules can never affect a decision again (the lead-time check blocks
// those dates first), so this is pure housekeeping.
func (r *mongoBlockRuleRepo) DeleteBefore(ctx context.Context, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"date": bson.M{"$lt": date}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
