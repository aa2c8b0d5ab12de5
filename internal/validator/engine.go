package validator

import (
	"context"

	"gstbook/internal/domain"
	"gstbook/internal/validator/gstr3b"
)

// Violation is one failed rule check in a validation report.
type Violation struct {
	RuleKey   string                    `json:"rule_key"`
	RuleName  string                    `json:"rule_name"`
	RuleType  domain.ValidationRuleType `json:"rule_type"`
	Severity  domain.ValidationSeverity `json:"severity"`
	FieldPath string                    `json:"field_path"`
	Message   string                    `json:"message"`
}

// Report is the outcome of validating one return document.
type Report struct {
	Violations []Violation `json:"violations"`
	Checked    int         `json:"checked"`
	Errors     int         `json:"errors"`
	Warnings   int         `json:"warnings"`
}

// Clean reports whether no error-severity rule failed. Warnings do not
// block preview or submission.
func (r Report) Clean() bool { return r.Errors == 0 }

// Engine runs registered rules against return documents. Checking is
// side-effect-free: the document is never modified and repeated runs on
// an unchanged document yield the same report.
type Engine struct {
	registry *Registry
}

// NewEngine creates a validation engine over the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// NewDefaultEngine creates an engine with all built-in return rules.
func NewDefaultEngine() *Engine {
	registry := NewRegistry()
	for _, v := range gstr3b.RequiredFieldValidators() {
		registry.Register(v)
	}
	registry.Register(gstr3b.GSTINFormatValidator())
	return NewEngine(registry)
}

// Check runs every registered rule against doc and collects the failures.
func (e *Engine) Check(ctx context.Context, doc *domain.ReturnDocument) Report {
	report := Report{Violations: []Violation{}}

	for _, v := range e.registry.All() {
		for _, res := range v.Validate(ctx, doc) {
			report.Checked++
			if res.Passed {
				continue
			}
			report.Violations = append(report.Violations, Violation{
				RuleKey:   v.RuleKey(),
				RuleName:  v.RuleName(),
				RuleType:  v.RuleType(),
				Severity:  v.Severity(),
				FieldPath: res.FieldPath,
				Message:   res.Message,
			})
			if v.Severity() == domain.ValidationSeverityError {
				report.Errors++
			} else {
				report.Warnings++
			}
		}
	}

	return report
}
