package ocr

import (
	"context"
	"fmt"

	"swasthya/models"
	"swasthya/services/diagnosis"
)

// Pipeline is the OCR-plus-diagnosis collaborator used by the dialogue flow.
type Pipeline interface {
	Analyze(ctx context.Context, imageRef string) (*models.ReportAnalysis, error)
}

// ReportPipeline acquires the image, runs the OCR provider and evaluates the
// diagnostic rule catalog over the extracted text.
type ReportPipeline struct {
	Extractor TextExtractor
}

func NewReportPipeline(extractor TextExtractor) *ReportPipeline {
	return &ReportPipeline{Extractor: extractor}
}

func (p *ReportPipeline) Analyze(ctx context.Context, imageRef string) (*models.ReportAnalysis, error) {
	imageData, cleanup, err := acquireImage(ctx, imageRef)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	text, err := p.Extractor.ExtractText(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}

	panel := diagnosis.Extract(text)
	candidates := diagnosis.Infer(panel)

	return &models.ReportAnalysis{
		Text:             text,
		Analysis:         diagnosis.Narrative(candidates),
		PredictedDisease: candidates[0].Disease,
	}, nil
}
