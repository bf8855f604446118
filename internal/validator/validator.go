package validator

import (
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"florify-catalog/internal/domain"
)

// MissingRequiredReason is the row error reported when an identity or
// description column is blank.
const MissingRequiredReason = "missing required fields (codbarra, descricao)"

const (
	codeBarcodeRequired     = "codbarra_required"
	codeDescriptionRequired = "descricao_required"
)

// Validator provides validation methods for catalog rows and requests.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRecord validates a normalized catalog row. Only the barcode and
// description are mandatory; every other column may be absent.
func (v *Validator) ValidateRecord(r *domain.CatalogRecord) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Barcode,
			validation.By(notBlank(codeBarcodeRequired)),
		),
		validation.Field(&r.Description,
			validation.By(notBlank(codeDescriptionRequired)),
		),
		validation.Field(&r.RegisteredOn,
			validation.Date("2006-01-02").Error("invalid_data_cadastro"),
		),
	)
}

// ValidateSelection validates the identifiers of a confirm request.
func (v *Validator) ValidateSelection(analysisID string, operatorID string) error {
	return validation.Errors{
		"analysis_id": validation.Validate(analysisID,
			validation.Required.Error("analysis_id_required"),
			is.UUID.Error("invalid_analysis_id"),
		),
		"operator_id": validation.Validate(operatorID,
			is.UUID.Error("invalid_operator_id"),
		),
	}.Filter()
}

// notBlank rejects strings that are empty after trimming.
func notBlank(code string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError(code, code)
		}
		return nil
	}
}

// ConvertValidationErrors converts ozzo validation errors on a row into the
// row error shown to the operator.
func ConvertValidationErrors(line int, err error) domain.RowError {
	ve, ok := err.(validation.Errors)
	if !ok {
		return domain.RowError{Line: line, Reason: err.Error()}
	}

	if _, missing := ve["codbarra"]; missing {
		return domain.RowError{Line: line, Reason: MissingRequiredReason}
	}
	if _, missing := ve["descricao"]; missing {
		return domain.RowError{Line: line, Reason: MissingRequiredReason}
	}

	fields := make([]string, 0, len(ve))
	for field := range ve {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %v", field, ve[field]))
	}
	return domain.RowError{Line: line, Reason: strings.Join(parts, "; ")}
}
