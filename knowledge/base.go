// Package knowledge holds the disease and prescription tables. They are built
// once at startup from the on-disk JSON files and never mutated afterwards,
// so concurrent readers need no locking.
package knowledge

import (
	"strings"

	"swasthya/models"
)

// RecommendationEntry mirrors one element of recommendation.json.
type RecommendationEntry struct {
	DiseaseID      string              `json:"disease_id"`
	Lang           string              `json:"lang"`
	Recommendation models.Prescription `json:"recommendation"`
}

// Base is the in-memory knowledge base.
type Base struct {
	records       []models.DiseaseRecord
	diseases      map[string]map[string]models.DiseaseRecord
	prescriptions map[string]map[string]models.Prescription
	nameIndex     map[string]string
}

// NewBase indexes the raw entries by (disease id, language) and builds the
// reverse name/alias index used by the OCR and diet flows.
func NewBase(records []models.DiseaseRecord, recs []RecommendationEntry) *Base {
	b := &Base{
		records:       records,
		diseases:      make(map[string]map[string]models.DiseaseRecord),
		prescriptions: make(map[string]map[string]models.Prescription),
		nameIndex:     make(map[string]string),
	}

	for _, rec := range records {
		if rec.DiseaseID == "" {
			continue
		}
		lang := rec.Lang
		if lang == "" {
			lang = "en"
		}
		if b.diseases[rec.DiseaseID] == nil {
			b.diseases[rec.DiseaseID] = make(map[string]models.DiseaseRecord)
		}
		b.diseases[rec.DiseaseID][lang] = rec

		if name := strings.ToLower(rec.DiseaseName); name != "" {
			b.nameIndex[name] = rec.DiseaseID
		}
		for _, alias := range rec.Aliases {
			if alias != "" {
				b.nameIndex[strings.ToLower(alias)] = rec.DiseaseID
			}
		}
	}

	for _, entry := range recs {
		if entry.DiseaseID == "" {
			continue
		}
		lang := entry.Lang
		if lang == "" {
			lang = "en"
		}
		if b.prescriptions[entry.DiseaseID] == nil {
			b.prescriptions[entry.DiseaseID] = make(map[string]models.Prescription)
		}
		b.prescriptions[entry.DiseaseID][lang] = entry.Recommendation
	}

	return b
}

// Disease returns the record for (id, lang), falling back to the English
// record when the requested language is absent.
func (b *Base) Disease(id, lang string) (models.DiseaseRecord, bool) {
	byLang, ok := b.diseases[id]
	if !ok {
		return models.DiseaseRecord{}, false
	}
	if rec, ok := byLang[lang]; ok {
		return rec, true
	}
	rec, ok := byLang["en"]
	return rec, ok
}

// Prescription returns the recommendation lists for (id, lang) with the same
// English fallback as Disease.
func (b *Base) Prescription(id, lang string) (models.Prescription, bool) {
	byLang, ok := b.prescriptions[id]
	if !ok {
		return models.Prescription{}, false
	}
	if p, ok := byLang[lang]; ok {
		return p, true
	}
	p, ok := byLang["en"]
	return p, ok
}

// ResolveName maps a disease name or alias (any language, case-insensitive)
// to its disease id.
func (b *Base) ResolveName(name string) (string, bool) {
	id, ok := b.nameIndex[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// InfoByName looks a disease up by its canonical name, case-insensitive.
func (b *Base) InfoByName(name string) (models.DiseaseInfo, bool) {
	want := strings.ToLower(name)
	for _, rec := range b.records {
		if strings.ToLower(rec.DiseaseName) == want {
			definition := rec.Definition
			if definition == "" {
				definition = "Definition not available."
			}
			return models.DiseaseInfo{
				Name:       rec.DiseaseName,
				Definition: definition,
				Symptoms:   rec.Symptoms,
				Causes:     rec.Causes,
			}, true
		}
	}
	return models.DiseaseInfo{}, false
}
