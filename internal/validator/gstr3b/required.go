package gstr3b

import (
	"context"
	"fmt"

	"gstbook/internal/domain"
)

// ValidationResult is the outcome of one rule check against one field.
type ValidationResult struct {
	Passed        bool
	FieldPath     string
	ExpectedValue string
	ActualValue   string
	Message       string
}

// requiredFieldValidator checks that a required field is not empty.
type requiredFieldValidator struct {
	ruleKey   string
	ruleName  string
	fieldPath string
	severity  domain.ValidationSeverity
	extract   func(*domain.ReturnDocument) string
}

func (v *requiredFieldValidator) RuleKey() string  { return v.ruleKey }
func (v *requiredFieldValidator) RuleName() string { return v.ruleName }
func (v *requiredFieldValidator) RuleType() domain.ValidationRuleType {
	return domain.ValidationRuleRequired
}
func (v *requiredFieldValidator) Severity() domain.ValidationSeverity { return v.severity }

func (v *requiredFieldValidator) Validate(_ context.Context, doc *domain.ReturnDocument) []ValidationResult {
	val := v.extract(doc)
	return []ValidationResult{{
		Passed:        val != "",
		FieldPath:     v.fieldPath,
		ExpectedValue: "non-empty value",
		ActualValue:   val,
		Message:       fieldMessage(val != "", v.ruleName, v.fieldPath),
	}}
}

func fieldMessage(passed bool, ruleName, fieldPath string) string {
	if passed {
		return fmt.Sprintf("%s: %s is present", ruleName, fieldPath)
	}
	return fmt.Sprintf("%s: %s is missing or empty", ruleName, fieldPath)
}

// RequiredFieldValidators returns all required field validators for the return.
func RequiredFieldValidators() []*requiredFieldValidator {
	return []*requiredFieldValidator{
		{
			ruleKey: "req.basic_info.gstin", ruleName: "Required: GSTIN",
			fieldPath: "basic_info.gstin", severity: domain.ValidationSeverityError,
			extract: func(d *domain.ReturnDocument) string { return d.BasicInfo.GSTIN },
		},
		{
			ruleKey: "req.basic_info.legal_name", ruleName: "Required: Legal Name",
			fieldPath: "basic_info.legal_name", severity: domain.ValidationSeverityError,
			extract: func(d *domain.ReturnDocument) string { return d.BasicInfo.LegalName },
		},
		{
			ruleKey: "req.verification.signatory_name", ruleName: "Required: Signatory Name",
			fieldPath: "verification.signatory_name", severity: domain.ValidationSeverityError,
			extract: func(d *domain.ReturnDocument) string { return d.Verification.SignatoryName },
		},
		{
			ruleKey: "req.verification.designation", ruleName: "Required: Signatory Designation",
			fieldPath: "verification.designation", severity: domain.ValidationSeverityError,
			extract: func(d *domain.ReturnDocument) string { return d.Verification.Designation },
		},
		{
			ruleKey: "req.verification.place", ruleName: "Required: Place of Declaration",
			fieldPath: "verification.place", severity: domain.ValidationSeverityWarning,
			extract: func(d *domain.ReturnDocument) string { return d.Verification.Place },
		},
	}
}
