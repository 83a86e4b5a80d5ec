// Package diet answers diet-advice queries from the knowledge base.
package diet

import (
	"fmt"
	"strings"

	"swasthya/knowledge"
	"swasthya/models"
	"swasthya/utils"
)

// Advisor resolves a disease id or name to its diet recommendation lists.
// The returned error text is user-facing.
type Advisor interface {
	Advise(query, language string) (models.Prescription, error)
}

// KBAdvisor serves advice straight from the in-memory knowledge base.
type KBAdvisor struct {
	KB *knowledge.Base
}

func NewKBAdvisor(kb *knowledge.Base) *KBAdvisor {
	return &KBAdvisor{KB: kb}
}

// Advise accepts either a disease id (all digits) or a disease name/alias in
// any supported language. When no language is supplied it is detected from
// the query text itself.
func (a *KBAdvisor) Advise(query, language string) (models.Prescription, error) {
	query = strings.TrimSpace(query)

	if language == "" {
		if query != "" && !isDigits(query) {
			language = utils.DetectLanguage(query)
		} else {
			language = "en"
		}
	}

	var diseaseID string
	if isDigits(query) {
		diseaseID = query
	} else if id, ok := a.KB.ResolveName(query); ok {
		diseaseID = id
	} else {
		return models.Prescription{}, fmt.Errorf("Disease '%s' not found. Please try a different name.", query)
	}

	pres, ok := a.KB.Prescription(diseaseID, language)
	if !ok {
		return models.Prescription{}, fmt.Errorf("No diet advice found for this disease.")
	}
	return pres, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
