package models

import "strings"

// Step is the named position in the conversation state machine.
type Step string

const (
	StepStart              Step = "start"
	StepSymptomInput       Step = "symptom_input"
	StepSymptomResult      Step = "symptom_result"
	StepOCRResult          Step = "ocr_result"
	StepDiseaseDescription Step = "disease_description"
	StepRecommendation     Step = "recommendation"
)

// OptionTag identifies an offered option independently of its display label.
// Routing dispatches on tags only; labels are presentation.
type OptionTag string

const (
	TagSymptomChecker OptionTag = "symptom_checker"
	TagScanReport     OptionTag = "scan_report"
	TagDiseaseInfo    OptionTag = "disease_info"
	TagDietAdvice     OptionTag = "diet_advice"
	TagDescription    OptionTag = "disease_description"
	TagRecommendation OptionTag = "diet_recommendation"
	TagStartOver      OptionTag = "start_over"
)

// Option is a single selectable button offered to the user.
type Option struct {
	Tag   OptionTag `json:"tag"`
	Label string    `json:"label"`
}

// Viewed-section markers for the current diagnosed case.
const (
	SectionDescription    = "description"
	SectionRecommendation = "recommendation"
)

// ChatState is the full conversation state for one turn. The caller owns it
// between turns: the service receives it, computes the next state and returns
// it whole. Nothing is kept server-side.
type ChatState struct {
	Message        string   `json:"message"`
	SelectedOption string   `json:"selected_option"`
	Step           Step     `json:"step"`
	Response       string   `json:"response"`
	Options        []Option `json:"options"`
	DiseaseID      string   `json:"disease_id"`
	Urgency        string   `json:"urgency"`
	Language       string   `json:"language"`
	ViewedSections []string `json:"viewed_sections"`
}

// SelectedTag returns the routing tag for the currently selected option.
func (s *ChatState) SelectedTag() OptionTag {
	return NormalizeOptionTag(s.SelectedOption)
}

// HasViewed reports whether the given section was already shown this case.
func (s *ChatState) HasViewed(section string) bool {
	for _, v := range s.ViewedSections {
		if v == section {
			return true
		}
	}
	return false
}

// MarkViewed records a section as shown. Idempotent.
func (s *ChatState) MarkViewed(section string) {
	if !s.HasViewed(section) {
		s.ViewedSections = append(s.ViewedSections, section)
	}
}

// knownTags is the closed set of routing tags accepted verbatim.
var knownTags = map[OptionTag]bool{
	TagSymptomChecker: true,
	TagScanReport:     true,
	TagDiseaseInfo:    true,
	TagDietAdvice:     true,
	TagDescription:    true,
	TagRecommendation: true,
	TagStartOver:      true,
}

// NormalizeOptionTag maps a selected-option value to its routing tag. Clients
// are expected to echo back the tag of the option they picked; older clients
// send the display label, so the legacy label markers are recognized here —
// and only here, so label text can never leak into routing decisions.
func NormalizeOptionTag(selected string) OptionTag {
	if tag := OptionTag(selected); knownTags[tag] {
		return tag
	}
	switch {
	case strings.Contains(selected, "Start Over"):
		return TagStartOver
	case strings.Contains(selected, "OPTION_1"):
		return TagSymptomChecker
	case strings.Contains(selected, "OPTION_2"):
		return TagScanReport
	case strings.Contains(selected, "OPTION_3"):
		return TagDiseaseInfo
	case strings.Contains(selected, "OPTION_4"):
		return TagDietAdvice
	case strings.Contains(selected, "Disease Description"):
		return TagDescription
	case strings.Contains(selected, "Diet Recommendation"):
		return TagRecommendation
	}
	return ""
}

// ChatRequest is the turn payload from the frontend. Every field is optional;
// "option" is the legacy alias for "selected_option".
type ChatRequest struct {
	Message        string   `json:"message"`
	SelectedOption string   `json:"selected_option"`
	Option         string   `json:"option"`
	Step           string   `json:"step"`
	DiseaseID      string   `json:"disease_id"`
	Urgency        string   `json:"urgency"`
	Language       string   `json:"language"`
	ViewedSections []string `json:"viewed_sections"`
}

// ToState builds a fresh session state from the payload, applying defaults.
func (r *ChatRequest) ToState() ChatState {
	selected := r.SelectedOption
	if selected == "" {
		selected = r.Option
	}
	step := Step(r.Step)
	if step == "" {
		step = StepStart
	}
	lang := r.Language
	if lang == "" {
		lang = "en"
	}
	viewed := r.ViewedSections
	if viewed == nil {
		viewed = []string{}
	}
	return ChatState{
		Message:        r.Message,
		SelectedOption: selected,
		Step:           step,
		Options:        []Option{},
		DiseaseID:      r.DiseaseID,
		Urgency:        r.Urgency,
		Language:       lang,
		ViewedSections: viewed,
	}
}
