// Package ocr turns a lab-report image reference into extracted text and a
// diagnostic narrative.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// TextExtractor is the external OCR provider. Input is a base64 data URI;
// output is the extracted text.
type TextExtractor interface {
	ExtractText(ctx context.Context, imageData string) (string, error)
}

// Shared HTTP client for provider calls; OCR uploads are slow.
var ocrHTTPClient = &http.Client{Timeout: 60 * time.Second}

// KolosalClient calls the Kolosal OCR API.
type KolosalClient struct {
	URL    string
	APIKey string
}

func NewKolosalClient(url, apiKey string) *KolosalClient {
	return &KolosalClient{URL: url, APIKey: apiKey}
}

type kolosalRequest struct {
	AutoFix   bool   `json:"auto_fix"`
	Invoice   bool   `json:"invoice"`
	Language  string `json:"language"`
	ImageData string `json:"image_data"`
}

type kolosalResponse struct {
	ExtractedText string `json:"extracted_text"`
}

// ExtractText posts the image and returns the extracted text lower-cased,
// ready for lab-parameter matching.
func (c *KolosalClient) ExtractText(ctx context.Context, imageData string) (string, error) {
	payload, err := json.Marshal(kolosalRequest{
		AutoFix:   true,
		Invoice:   false,
		Language:  "auto",
		ImageData: imageData,
	})
	if err != nil {
		return "", fmt.Errorf("marshal OCR request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("build OCR request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ocrHTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call OCR provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OCR provider status %d", resp.StatusCode)
	}

	var out kolosalResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode OCR response: %w", err)
	}
	return strings.ToLower(out.ExtractedText), nil
}
