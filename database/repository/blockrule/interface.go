// File: database/repository/blockrule/interface.go
package blockRuleRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"roofline/database"
	"roofline/models"
	"roofline/utils"
)

// Filter narrows List calls. Zero values mean "no constraint"; Scope is a
// pointer so "unscoped rules only" (empty state) can be asked for
// explicitly, distinct from "any scope".
type Filter struct {
	Scope    *string
	DateFrom string // inclusive
	DateTo   string // exclusive
}

// ScopeFilter builds a Filter matching rules whose state scope is exactly
// the given value ("" selects the all-regions rules).
func ScopeFilter(scope string) Filter {
	return Filter{Scope: &scope}
}

// BlockRuleRepository is the block-rule store access contract. There is
// deliberately no update operation: edited rules are committed as
// delete-and-insert batches.
type BlockRuleRepository interface {
	List(ctx context.Context, f Filter) ([]models.BlockRule, error)
	Create(ctx context.Context, rule *models.BlockRule) error
	Delete(ctx context.Context, id string) error
	DeleteBefore(ctx context.Context, date string) (int64, error)
}

type mongoBlockRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockRuleRepo constructs the MongoDB-backed repository.
func NewMongoBlockRuleRepo() BlockRuleRepository {
	db := database.MongoClient.Database(database.DBName)
	repo := &mongoBlockRuleRepo{coll: db.Collection("blockrules")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("blockrule index bootstrap failed", zap.Error(err))
	}
	return repo
}
