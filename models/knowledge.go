package models

// DiseaseRecord is one language-specific knowledge base entry.
type DiseaseRecord struct {
	DiseaseID   string   `json:"disease_label"`
	Lang        string   `json:"lang"`
	DiseaseName string   `json:"disease_name"`
	Aliases     []string `json:"aliases"`
	Definition  string   `json:"definitions"`
	Symptoms    []string `json:"symptoms"`
	Causes      []string `json:"causes"`
}

// Prescription holds the ordered recommendation lists for one disease/language.
type Prescription struct {
	Do           []string `json:"do"`
	Dont         []string `json:"dont"`
	HomeRemedies []string `json:"home_remedies"`
}

// IsEmpty reports whether no list carries any entry.
func (p Prescription) IsEmpty() bool {
	return len(p.Do) == 0 && len(p.Dont) == 0 && len(p.HomeRemedies) == 0
}

// DiseaseInfo is the result of a name lookup against the knowledge base.
type DiseaseInfo struct {
	Name       string   `json:"name"`
	Definition string   `json:"definition"`
	Symptoms   []string `json:"symptoms"`
	Causes     []string `json:"causes"`
}

// Prediction is the symptom predictor result for one input text.
type Prediction struct {
	Language    string `json:"language"`
	DiseaseID   string `json:"disease_id"`
	DiseaseName string `json:"disease_name"`
	UrgencyID   int    `json:"urgency_id"`
	UrgencyName string `json:"urgency_name"`
}

// ReportAnalysis is the OCR pipeline output for one lab report image.
type ReportAnalysis struct {
	Text             string `json:"text"`
	Analysis         string `json:"analysis"`
	PredictedDisease string `json:"predicted_disease"`
}
