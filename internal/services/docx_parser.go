package services

import (
	"fmt"

	"github.com/lu4p/cat/docxtxt"
)

type DocxParserService interface {
	ExtractText(data []byte) (string, error)
}

type docxParserService struct{}

func NewDocxParserService() DocxParserService {
	return &docxParserService{}
}

func (d *docxParserService) ExtractText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("malformed DOCX: %v", r)
		}
	}()

	text, err = docxtxt.BytesToStr(data)
	if err != nil {
		return "", fmt.Errorf("failed to parse DOCX: %w", err)
	}

	return text, nil
}
