package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"swasthya/models"
)

// File-level entry shapes. The ids are numeric in the data files and string
// everywhere in memory.
type diseaseFileEntry struct {
	DiseaseLabel json.Number `json:"disease_label"`
	Lang         string      `json:"lang"`
	DiseaseName  string      `json:"disease_name"`
	Aliases      []string    `json:"aliases"`
	Definitions  string      `json:"definitions"`
	Symptoms     []string    `json:"symptoms"`
	Causes       []string    `json:"causes"`
}

type recommendationFileEntry struct {
	DiseaseID      json.Number         `json:"disease_id"`
	Lang           string              `json:"lang"`
	Recommendation models.Prescription `json:"recommendation"`
}

// Load reads disease.json and recommendation.json from dataDir and builds the
// in-memory base.
func Load(dataDir string) (*Base, error) {
	var diseaseEntries []diseaseFileEntry
	if err := readJSON(filepath.Join(dataDir, "disease.json"), &diseaseEntries); err != nil {
		return nil, fmt.Errorf("load disease data: %w", err)
	}

	var recEntries []recommendationFileEntry
	if err := readJSON(filepath.Join(dataDir, "recommendation.json"), &recEntries); err != nil {
		return nil, fmt.Errorf("load recommendation data: %w", err)
	}

	records := make([]models.DiseaseRecord, 0, len(diseaseEntries))
	for _, e := range diseaseEntries {
		records = append(records, models.DiseaseRecord{
			DiseaseID:   e.DiseaseLabel.String(),
			Lang:        e.Lang,
			DiseaseName: e.DiseaseName,
			Aliases:     e.Aliases,
			Definition:  e.Definitions,
			Symptoms:    e.Symptoms,
			Causes:      e.Causes,
		})
	}

	recs := make([]RecommendationEntry, 0, len(recEntries))
	for _, e := range recEntries {
		recs = append(recs, RecommendationEntry{
			DiseaseID:      e.DiseaseID.String(),
			Lang:           e.Lang,
			Recommendation: e.Recommendation,
		})
	}

	return NewBase(records, recs), nil
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
