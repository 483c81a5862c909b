package r4

import (
	"github.com/damedic/fhir-binding-go/validate"
)

// OperationOutcomeFromResult reports the issues of a validation result as an
// OperationOutcome, one issue each, located by expression. A result without
// issues yields a single informational issue since issue is required.
func OperationOutcomeFromResult(res validate.Result) OperationOutcome {
	var issues []OperationOutcomeIssue
	for _, i := range res.Issues {
		b := NewOperationOutcomeIssue(IssueType(i.Code), IssueSeverity(i.Severity)).
			SetDiagnostics(i.Diagnostics)
		if i.Path != "" {
			b.SetExpression(i.Path.String())
		}
		issues = append(issues, b.Build())
	}

	if len(issues) == 0 {
		issues = append(issues, NewOperationOutcomeIssue(IssueTypeInformational, IssueSeverityInformation).
			SetDiagnostics("no issues found").
			Build())
	}
	return NewOperationOutcome(issues).Build()
}
