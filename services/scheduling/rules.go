// File: services/scheduling/rules.go
package scheduling

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	blockRuleRepo "roofline/database/repository/blockrule"
	"roofline/models"
	"roofline/utils"
)

// ListBlockRules returns rules, optionally narrowed to an exact scope
// (nil = every rule, &"" = all-regions rules, &"GA" = GA-scoped rules).
func (s *DefaultSchedulingService) ListBlockRules(ctx context.Context, scope *string) ([]models.BlockRule, error) {
	return s.RuleRepo.List(ctx, blockRuleRepo.Filter{Scope: scope})
}

// CreateBlockRule inserts one ad-hoc rule (whole-day or single-slot).
func (s *DefaultSchedulingService) CreateBlockRule(ctx context.Context, rule models.BlockRule) (*models.BlockRule, error) {
	problems := map[string]string{}
	if rule.Date == "" {
		problems["date"] = "Date is required"
	}
	if rule.Time != "" && !models.IsOperatingHour(rule.Time) {
		problems["time"] = "Time is not an operating-hour slot"
	}
	if rule.State != "" {
		if _, ok := s.Engine.Regions().Get(rule.State); !ok {
			problems["state"] = "Unknown state code"
		}
	}
	if len(problems) > 0 {
		return nil, &ValidationError{Fields: problems}
	}

	if err := s.RuleRepo.Create(ctx, &rule); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &rule, nil
}

// DeleteBlockRule removes one rule by id.
func (s *DefaultSchedulingService) DeleteBlockRule(ctx context.Context, id string) error {
	if err := s.RuleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRuleRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ReconcileBlockRules commits a bulk calendar edit for one scope as the
// minimal batch of deletions and insertions. Inserted rules come back
// with server-assigned ids in place of their client temporaries.
//
// The batch is not transactional: the store applies each write on its
// own, so a mid-batch failure leaves some changes committed. The caller
// gets the error and re-reads the committed set to converge.
func (s *DefaultSchedulingService) ReconcileBlockRules(ctx context.Context, scope string, working []models.BlockRule) (*ReconcileResult, error) {
	logger := utils.GetLogger()

	if err := validateWorkingSet(scope, working); err != nil {
		return nil, &ValidationError{Fields: map[string]string{"rules": err.Error()}}
	}

	committed, err := s.RuleRepo.List(ctx, blockRuleRepo.ScopeFilter(scope))
	if err != nil {
		return nil, fmt.Errorf("failed to load committed rules: %w", err)
	}

	toDelete, toInsert := DiffRules(committed, working)
	result := &ReconcileResult{}

	for _, r := range toDelete {
		if err := s.RuleRepo.Delete(ctx, r.ID); err != nil && !errors.Is(err, blockRuleRepo.ErrNotFound) {
			return result, fmt.Errorf("failed to delete rule %s: %w", r.ID, err)
		}
		result.Deleted++
	}
	for _, r := range toInsert {
		rule := r
		if err := s.RuleRepo.Create(ctx, &rule); err != nil {
			return result, fmt.Errorf("failed to insert rule for %s: %w", rule.Date, err)
		}
		result.Inserted = append(result.Inserted, rule)
	}

	s.invalidate(ctx)
	logger.Info("block rules reconciled",
		zap.String("scope", scope),
		zap.Int("deleted", result.Deleted),
		zap.Int("inserted", len(result.Inserted)))
	return result, nil
}
