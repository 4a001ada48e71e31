package usecase

import (
	"bytes"
	"path/filepath"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"

	domainErrors "github.com/attesto/attesto/internal/domain/errors"
)

var pdfMagic = []byte("%PDF-")

// originalContentTypes lists source-document formats accepted from customers.
// Completed translations are stricter: PDF only.
var originalContentTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// newValidator returns the configured payload validator shared by use cases.
func newValidator() *validatorv10.Validate {
	return validatorv10.New(validatorv10.WithRequiredStructEnabled())
}

// ValidateTranslationUpload checks a delivery artifact before any store or
// metadata mutation: PDF extension, PDF magic bytes, and size limit.
func ValidateTranslationUpload(fileName string, data []byte, maxBytes int64) error {
	if strings.ToLower(filepath.Ext(fileName)) != ".pdf" {
		return domainErrors.Validation("translated file must be a PDF, got %q", fileName)
	}
	if len(data) == 0 {
		return domainErrors.Validation("translated file is empty")
	}
	if int64(len(data)) > maxBytes {
		return domainErrors.Validation("translated file exceeds %d bytes", maxBytes)
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return domainErrors.Validation("translated file is not a valid PDF")
	}
	return nil
}

// ValidateOriginalUpload checks a customer source document before storage.
func ValidateOriginalUpload(fileName, contentType string, data []byte, maxBytes int64) error {
	if strings.TrimSpace(fileName) == "" {
		return domainErrors.Validation("file name is required")
	}
	if len(data) == 0 {
		return domainErrors.Validation("uploaded file is empty")
	}
	if int64(len(data)) > maxBytes {
		return domainErrors.Validation("uploaded file exceeds %d bytes", maxBytes)
	}
	if _, ok := originalContentTypes[contentType]; !ok {
		return domainErrors.Validation("unsupported content type %q", contentType)
	}
	return nil
}
