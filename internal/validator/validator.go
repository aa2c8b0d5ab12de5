package validator

import (
	"context"

	"gstbook/internal/domain"
	"gstbook/internal/validator/gstr3b"
)

// Validator is the interface for a single built-in validation rule.
type Validator interface {
	Validate(ctx context.Context, doc *domain.ReturnDocument) []gstr3b.ValidationResult
	RuleKey() string
	RuleName() string
	RuleType() domain.ValidationRuleType
	Severity() domain.ValidationSeverity
}
