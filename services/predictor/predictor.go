// Package predictor calls the symptom-to-disease model microservice.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
	"unicode"

	"go.uber.org/zap"

	"swasthya/models"
	"swasthya/utils"
)

// Service predicts a disease and urgency from free-text symptoms. A nil
// prediction with a nil error means the model produced no result.
type Service interface {
	Predict(ctx context.Context, text string) (*models.Prediction, error)
}

// Translator converts text to English before prediction when the detected
// input language is outside the model's supported set.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Shared HTTP client for predictor calls.
var predictorHTTPClient = &http.Client{Timeout: 30 * time.Second}

// Client is the HTTP implementation of Service.
type Client struct {
	URL        string
	Translator Translator
}

func NewClient(url string, translator Translator) *Client {
	return &Client{URL: url, Translator: translator}
}

// Wire shapes of the predictor microservice.
type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Language  string `json:"language"`
	DiseaseID *int   `json:"disease_id"`
	Disease   string `json:"disease"`
	UrgencyID int    `json:"urgency_id"`
	Urgency   string `json:"urgency"`
}

// Predict detects the input language, translates unsupported input to
// English, and forwards the text to the model service.
func (c *Client) Predict(ctx context.Context, text string) (*models.Prediction, error) {
	logger := utils.GetLogger()

	lang := utils.DetectLanguage(text)
	processing := text
	if !utils.SupportedLanguages[lang] || hasUnsupportedScript(text) {
		lang = "en"
		if c.Translator != nil {
			translated, err := c.Translator.Translate(ctx, text)
			if err != nil {
				// Proceed with the original text; the model may still cope.
				logger.Warn("Translation fallback failed", zap.Error(err))
			} else {
				processing = translated
			}
		}
	}

	payload, err := json.Marshal(predictRequest{Text: processing})
	if err != nil {
		return nil, fmt.Errorf("marshal predictor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("build predictor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := predictorHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call predictor service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("Predictor service returned non-OK status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("predictor service status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode predictor response: %w", err)
	}
	if out.DiseaseID == nil {
		// The model declined to answer.
		return nil, nil
	}

	pred := &models.Prediction{
		Language:    out.Language,
		DiseaseID:   strconv.Itoa(*out.DiseaseID),
		DiseaseName: out.Disease,
		UrgencyID:   out.UrgencyID,
		UrgencyName: out.Urgency,
	}
	if pred.Language == "" {
		pred.Language = lang
	}
	if pred.UrgencyName == "" {
		pred.UrgencyName = UrgencyName(pred.Language, pred.UrgencyID)
	}
	return pred, nil
}

// hasUnsupportedScript reports whether the text carries letters from a script
// the model does not handle (anything beyond ASCII and the nine Indic ranges
// covered by DetectLanguage).
func hasUnsupportedScript(text string) bool {
	for _, ch := range text {
		if !unicode.IsLetter(ch) || ch < 0x0080 {
			continue
		}
		if ch >= 0x0900 && ch <= 0x0D7F {
			continue
		}
		return true
	}
	return false
}
