package gstr3b

import (
	"context"
	"fmt"
	"regexp"

	"gstbook/internal/domain"
)

var gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z]\d[A-Z\d][A-Z\d]$`)

// gstinFormatValidator checks the GSTIN against the statutory 15-character
// layout. An empty GSTIN is the required rule's problem, not this one's,
// so it passes here to keep one missing field to one violation.
type gstinFormatValidator struct{}

func (v *gstinFormatValidator) RuleKey() string  { return "fmt.basic_info.gstin" }
func (v *gstinFormatValidator) RuleName() string { return "Format: GSTIN" }
func (v *gstinFormatValidator) RuleType() domain.ValidationRuleType {
	return domain.ValidationRuleFormat
}
func (v *gstinFormatValidator) Severity() domain.ValidationSeverity {
	return domain.ValidationSeverityWarning
}

func (v *gstinFormatValidator) Validate(_ context.Context, doc *domain.ReturnDocument) []ValidationResult {
	gstin := doc.BasicInfo.GSTIN
	passed := gstin == "" || gstinPattern.MatchString(gstin)
	msg := "Format: GSTIN matches the statutory layout"
	if !passed {
		msg = fmt.Sprintf("Format: GSTIN %q does not match the statutory layout", gstin)
	}
	return []ValidationResult{{
		Passed:        passed,
		FieldPath:     "basic_info.gstin",
		ExpectedValue: "15-character GSTIN",
		ActualValue:   gstin,
		Message:       msg,
	}}
}

// GSTINFormatValidator returns the GSTIN format validator.
func GSTINFormatValidator() *gstinFormatValidator {
	return &gstinFormatValidator{}
}
