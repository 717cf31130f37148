package services

import (
	"errors"
	"fmt"

	"alfredoptarigan/resume-analyzer/internal/models"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExtractionFailed  = errors.New("text extraction failed")
	ErrNoTextFound       = errors.New("no text content found")
	ErrEmptyResume       = errors.New("resume text is empty")
)

const (
	UnsupportedFormatMessage = "Unsupported file format. Please upload a PDF or DOCX file."
	NoTextFoundMessage       = "⚠️ No text found in the uploaded file. Please upload a valid resume."
)

// ExtractionError carries the parser failure for a given file type.
type ExtractionError struct {
	FileType models.FileType
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s text: %v", e.FileType, e.Err)
}

func (e *ExtractionError) Unwrap() []error {
	return []error{ErrExtractionFailed, e.Err}
}

// ExtractionMessage turns an Extract error into the text shown to the user.
func ExtractionMessage(err error) string {
	var extractionErr *ExtractionError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedFormat):
		return UnsupportedFormatMessage
	case errors.Is(err, ErrNoTextFound):
		return NoTextFoundMessage
	case errors.As(err, &extractionErr):
		switch extractionErr.FileType {
		case models.FileTypePDF:
			return fmt.Sprintf("⚠️ Error reading PDF file: %v", extractionErr.Err)
		case models.FileTypeDOCX:
			return fmt.Sprintf("⚠️ Error reading DOCX file: %v", extractionErr.Err)
		}
	}
	return fmt.Sprintf("⚠️ Error reading file: %v", err)
}
