// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ocr-batch/models"
	"github.com/go-playground/validator/v10"
)

// JSON field names reported by validator errors.
const (
	fieldBatch    = "batch"
	fieldFileName = "fileName"
	fieldFile     = "file"
)

// SubmitRequestValidator validates [models.SubmitRequest] values (and
// pointers to them) against the struct tags declared on the model.
type SubmitRequestValidator struct {
	validate *validator.Validate
}

// NewSubmitRequestValidator returns a ready-to-use [SubmitRequestValidator].
// Field errors are reported by their JSON names.
func NewSubmitRequestValidator() *SubmitRequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonTagName)

	return &SubmitRequestValidator{validate: v}
}

// Validate implements [Validator].
func (s *SubmitRequestValidator) Validate(ctx context.Context, value any) error {
	var req models.SubmitRequest
	switch v := value.(type) {
	case models.SubmitRequest:
		req = v
	case *models.SubmitRequest:
		if v == nil {
			return fmt.Errorf("%w: nil *models.SubmitRequest", ErrUnsupportedType)
		}
		req = *v
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	return s.mapErrors(s.validate.StructCtx(ctx, req))
}

// mapErrors converts the first validator field error into a package sentinel.
func (s *SubmitRequestValidator) mapErrors(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	fe := fieldErrs[0]
	switch {
	case fe.Field() == fieldBatch && (fe.Tag() == "required" || fe.Tag() == "min"):
		return fmt.Errorf("%w: %s", ErrEmptyBatch, fe.Namespace())
	case fe.Field() == fieldBatch && fe.Tag() == "max":
		return fmt.Errorf("%w: %s", ErrBatchTooLarge, fe.Namespace())
	case fe.Field() == fieldFileName:
		return fmt.Errorf("%w: %s", ErrEmptyFileName, fe.Namespace())
	case fe.Field() == fieldFile && fe.Tag() == "base64":
		return fmt.Errorf("%w: %s", ErrInvalidBase64, fe.Namespace())
	default:
		return fmt.Errorf("%w: %s failed on %q", ErrInvalidRequest, fe.Namespace(), fe.Tag())
	}
}
