package services

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"alfredoptarigan/resume-analyzer/internal/metrics"
	"alfredoptarigan/resume-analyzer/internal/models"
)

type ExtractorService interface {
	Extract(file *models.UploadedFile) (string, error)
}

type extractorService struct {
	pdfParser  PDFParserService
	docxParser DocxParserService
}

func NewExtractorService(pdfParser PDFParserService, docxParser DocxParserService) ExtractorService {
	return &extractorService{
		pdfParser:  pdfParser,
		docxParser: docxParser,
	}
}

// Extract implements ExtractorService.
func (e *extractorService) Extract(file *models.UploadedFile) (string, error) {
	start := time.Now()

	fileType, ok := models.DetectFileType(file.Name)
	if !ok {
		ext := strings.ToLower(filepath.Ext(file.Name))
		metrics.CaptureExtraction("unknown", metrics.StatusUnsupported, 0)
		log.Printf("⚠️  Rejected upload %s: unsupported extension %q\n", file.ID, ext)
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	var (
		text string
		err  error
	)
	switch fileType {
	case models.FileTypePDF:
		text, err = e.pdfParser.ExtractText(file.Content)
	case models.FileTypeDOCX:
		text, err = e.docxParser.ExtractText(file.Content)
	}

	if err != nil {
		metrics.CaptureExtraction(string(fileType), metrics.StatusFailed, time.Since(start))
		log.Printf("❌ Failed to extract %s text from %s (%s): %v\n", fileType, file.Name, file.ID, err)
		return "", &ExtractionError{FileType: fileType, Err: err}
	}

	if strings.TrimSpace(text) == "" {
		metrics.CaptureExtraction(string(fileType), metrics.StatusEmpty, time.Since(start))
		log.Printf("⚠️  No text found in %s (%s)\n", file.Name, file.ID)
		return "", ErrNoTextFound
	}

	metrics.CaptureExtraction(string(fileType), metrics.StatusSuccess, time.Since(start))
	log.Printf("📄 Extracted %d characters from %s (%s)\n", len(text), file.Name, file.ID)

	return text, nil
}
