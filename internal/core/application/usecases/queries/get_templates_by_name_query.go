package queries

import (
	"errors"

	"staffing/internal/pkg/errs"
	"staffing/internal/pkg/guard"
)

var ErrGetTemplatesByNameQueryIsNotConstructed = errors.New(
	"GetTemplatesByNameQuery must be created via NewGetTemplatesByNameQuery constructor",
)

// GetTemplatesByNameQuery retrieves templates matching an exact name.
type GetTemplatesByNameQuery struct {
	templateName string

	guard guard.ConstructorGuard
}

// NewGetTemplatesByNameQuery creates a query listing templates by name.
func NewGetTemplatesByNameQuery(templateName string) (GetTemplatesByNameQuery, error) {
	if templateName == "" {
		return GetTemplatesByNameQuery{}, errs.NewValueIsRequiredError("templateName")
	}

	return GetTemplatesByNameQuery{
		templateName: templateName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTemplatesByNameQuery) Validate() error {
	return q.guard.Validate(ErrGetTemplatesByNameQueryIsNotConstructed)
}

// TemplateName returns the exact template name to match.
func (q GetTemplatesByNameQuery) TemplateName() string {
	return q.templateName
}
