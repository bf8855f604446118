package validator

import (
	"errors"
	"strings"
	"testing"

	"florify-catalog/internal/domain"
)

func TestValidateRecord(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		record  *domain.CatalogRecord
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid record",
			record:  &domain.CatalogRecord{Barcode: "7891234567890", Description: "Rosa Vermelha"},
			wantErr: false,
		},
		{
			name:    "valid record with date",
			record:  &domain.CatalogRecord{Barcode: "789", Description: "Lirio", RegisteredOn: "2024-03-15"},
			wantErr: false,
		},
		{
			name:    "missing barcode",
			record:  &domain.CatalogRecord{Description: "Rosa Vermelha"},
			wantErr: true,
			errMsg:  "codbarra",
		},
		{
			name:    "whitespace barcode",
			record:  &domain.CatalogRecord{Barcode: "   ", Description: "Rosa Vermelha"},
			wantErr: true,
			errMsg:  "codbarra",
		},
		{
			name:    "missing description",
			record:  &domain.CatalogRecord{Barcode: "789"},
			wantErr: true,
			errMsg:  "descricao",
		},
		{
			name:    "malformed date",
			record:  &domain.CatalogRecord{Barcode: "789", Description: "Lirio", RegisteredOn: "15/03/2024"},
			wantErr: true,
			errMsg:  "data_cadastro",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRecord(tt.record)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRecord() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateRecord() error = %v, should contain %v", err, tt.errMsg)
			}
		})
	}
}

func TestValidateSelection(t *testing.T) {
	v := NewValidator()
	id := "123e4567-e89b-12d3-a456-426614174000"

	if err := v.ValidateSelection(id, ""); err != nil {
		t.Errorf("ValidateSelection() without operator error = %v", err)
	}
	if err := v.ValidateSelection(id, id); err != nil {
		t.Errorf("ValidateSelection() with operator error = %v", err)
	}
	if err := v.ValidateSelection("", ""); err == nil || !strings.Contains(err.Error(), "analysis_id") {
		t.Errorf("ValidateSelection() error = %v, want analysis_id error", err)
	}
	if err := v.ValidateSelection(id, "bob"); err == nil || !strings.Contains(err.Error(), "operator_id") {
		t.Errorf("ValidateSelection() error = %v, want operator_id error", err)
	}
}

func TestConvertValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.ValidateRecord(&domain.CatalogRecord{Barcode: "", Description: ""})
	got := ConvertValidationErrors(4, err)
	if got.Line != 4 || got.Reason != MissingRequiredReason {
		t.Errorf("ConvertValidationErrors() = %+v", got)
	}

	err = v.ValidateRecord(&domain.CatalogRecord{Barcode: "789", Description: "x", RegisteredOn: "nope"})
	got = ConvertValidationErrors(7, err)
	if got.Line != 7 || !strings.HasPrefix(got.Reason, "data_cadastro:") {
		t.Errorf("ConvertValidationErrors() = %+v", got)
	}

	got = ConvertValidationErrors(9, errors.New("boom"))
	if got.Reason != "boom" {
		t.Errorf("ConvertValidationErrors() = %+v", got)
	}
}
