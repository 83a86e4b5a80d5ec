package dialog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"swasthya/i18n"
	"swasthya/knowledge"
	"swasthya/models"
	"swasthya/services/diet"
	"swasthya/services/ocr"
	"swasthya/services/predictor"
	"swasthya/utils"
)

// Engine bundles the collaborators the step handlers need. All handles are
// built once at startup and injected; handlers themselves are pure
// state-to-state functions over them.
type Engine struct {
	KB        *knowledge.Base
	Predictor predictor.Service
	OCR       ocr.Pipeline
	Diet      diet.Advisor
}

func NewEngine(kb *knowledge.Base, pred predictor.Service, ocrPipe ocr.Pipeline, advisor diet.Advisor) *Engine {
	return &Engine{KB: kb, Predictor: pred, OCR: ocrPipe, Diet: advisor}
}

func startOverOption(lang string) models.Option {
	return models.Option{Tag: models.TagStartOver, Label: i18n.Resolve(lang, "start_opt")}
}

// caseOptions are the follow-up choices after a case has been established.
func caseOptions(lang string) []models.Option {
	return []models.Option{
		{Tag: models.TagDescription, Label: i18n.Resolve(lang, "desc_opt")},
		{Tag: models.TagRecommendation, Label: i18n.Resolve(lang, "rec_opt")},
		startOverOption(lang),
	}
}

// mustFormat resolves a parameterized template. A placeholder mismatch is a
// programming error; the panic is recovered at the turn boundary.
func mustFormat(lang, key string, params i18n.Params) string {
	text, err := i18n.Format(lang, key, params)
	if err != nil {
		panic(err)
	}
	return text
}

// handleStart shows the top-level menu and clears any previous case.
func (e *Engine) handleStart(_ context.Context, s models.ChatState) models.ChatState {
	s.Response = "Please select a service:"
	s.Options = []models.Option{
		{Tag: models.TagSymptomChecker, Label: "OPTION_1: Symptom Checker"},
		{Tag: models.TagScanReport, Label: "OPTION_2: Scan Report (OCR)"},
		{Tag: models.TagDiseaseInfo, Label: "OPTION_3: Disease Information"},
		{Tag: models.TagDietAdvice, Label: "OPTION_4: Diet Advice"},
	}
	s.Step = models.StepStart
	s.SelectedOption = ""
	s.DiseaseID = ""
	s.Urgency = ""
	s.ViewedSections = []string{}
	return s
}

// handleSymptomChecker asks for symptom text when there is none yet,
// otherwise runs the predictor and presents the identified case.
func (e *Engine) handleSymptomChecker(ctx context.Context, s models.ChatState) models.ChatState {
	logger := utils.GetLogger()
	msg := strings.TrimSpace(s.Message)

	if msg == "" || msg == s.SelectedOption || msg == "OPTION_1" {
		s.Response = "Please describe your symptoms in detail"
		s.Options = []models.Option{}
		s.Step = models.StepSymptomInput
		s.DiseaseID = ""
		s.Urgency = ""
		return s
	}

	pred, err := e.Predictor.Predict(ctx, msg)
	if err != nil {
		logger.Error("Symptom prediction failed", zap.Error(err))
		s.Response = fmt.Sprintf("Error processing symptoms: %v", err)
		s.Options = []models.Option{startOverOption("en")}
		s.Step = models.StepStart
		return s
	}
	if pred == nil {
		s.Response = i18n.Resolve("en", "error_model")
		s.Options = []models.Option{startOverOption("en")}
		s.Step = models.StepStart
		return s
	}

	lang := pred.Language
	if lang == "" {
		lang = "en"
	}

	// Prefer the knowledge base's localized disease name over the raw
	// model output.
	diseaseName := pred.DiseaseName
	if rec, ok := e.KB.Disease(pred.DiseaseID, lang); ok && rec.DiseaseName != "" {
		diseaseName = rec.DiseaseName
	}
	if diseaseName == "" {
		diseaseName = "Unknown"
	}

	s.Response = mustFormat(lang, "identified", i18n.Params{"disease": diseaseName}) +
		"\n\n" + mustFormat(lang, "urgency_label", i18n.Params{"urgency": pred.UrgencyName}) +
		"\n\n" + i18n.Resolve(lang, "ask_next")
	s.Options = caseOptions(lang)
	s.DiseaseID = pred.DiseaseID
	s.Urgency = pred.UrgencyName
	s.Language = lang
	s.Step = models.StepSymptomResult
	return s
}

// handleDescription shows name, definition and symptoms of the current case.
func (e *Engine) handleDescription(_ context.Context, s models.ChatState) models.ChatState {
	lang := s.Language
	if lang == "" {
		lang = "en"
	}

	rec, _ := e.KB.Disease(s.DiseaseID, lang)
	name := rec.DiseaseName
	if name == "" {
		name = "Unknown"
	}
	definition := rec.Definition
	if definition == "" {
		definition = "Definition not available."
	}
	symptoms := i18n.Resolve(lang, "no_sym")
	if len(rec.Symptoms) > 0 {
		symptoms = strings.Join(rec.Symptoms, ", ")
	}

	s.Response = i18n.Resolve(lang, "disease_label") + " " + name +
		"\n\n" + i18n.Resolve(lang, "def_label") + " " + definition +
		"\n\n" + i18n.Resolve(lang, "sym_label") + " " + symptoms

	s.MarkViewed(models.SectionDescription)
	if s.HasViewed(models.SectionRecommendation) {
		s.Options = []models.Option{startOverOption(lang)}
	} else {
		s.Options = []models.Option{
			{Tag: models.TagRecommendation, Label: i18n.Resolve(lang, "rec_opt")},
			startOverOption(lang),
		}
	}
	s.Step = models.StepDiseaseDescription
	return s
}

// handleRecommendation shows the Do / Don't / Home Remedies lists.
func (e *Engine) handleRecommendation(_ context.Context, s models.ChatState) models.ChatState {
	lang := s.Language
	if lang == "" {
		lang = "en"
	}

	pres, ok := e.KB.Prescription(s.DiseaseID, lang)
	if !ok || pres.IsEmpty() {
		s.Response = i18n.Resolve(lang, "no_data")
		s.Options = []models.Option{startOverOption(lang)}
		s.Step = models.StepStart
		s.SelectedOption = ""
		return s
	}

	var b strings.Builder
	b.WriteString(i18n.Resolve(lang, "rec_header") + "\n")
	if len(pres.Do) > 0 {
		b.WriteString("\n" + i18n.Resolve(lang, "do_label") + "\n" + bullets(pres.Do))
	}
	if len(pres.Dont) > 0 {
		b.WriteString("\n\n" + i18n.Resolve(lang, "dont_label") + "\n" + bullets(pres.Dont))
	}
	if len(pres.HomeRemedies) > 0 {
		b.WriteString("\n\n" + i18n.Resolve(lang, "remedy_label") + "\n" + bullets(pres.HomeRemedies))
	}
	s.Response = b.String()

	s.MarkViewed(models.SectionRecommendation)
	if s.HasViewed(models.SectionDescription) {
		s.Options = []models.Option{startOverOption(lang)}
	} else {
		s.Options = []models.Option{
			{Tag: models.TagDescription, Label: i18n.Resolve(lang, "desc_opt")},
			startOverOption(lang),
		}
	}
	s.Step = models.StepRecommendation
	s.SelectedOption = ""
	return s
}

// handleDiseaseInfo answers a one-shot disease lookup by name.
func (e *Engine) handleDiseaseInfo(_ context.Context, s models.ChatState) models.ChatState {
	info, ok := e.KB.InfoByName(strings.TrimSpace(s.Message))
	if !ok {
		s.Response = "Disease not found."
		s.Options = []models.Option{startOverOption("en")}
		s.Step = models.StepStart
		s.SelectedOption = ""
		return s
	}

	s.Response = "Disease: " + info.Name +
		"\n\nDefinition: " + info.Definition +
		"\n\nSymptoms: " + strings.Join(info.Symptoms, ", ")
	s.Options = []models.Option{startOverOption("en")}
	s.Step = models.StepStart
	s.SelectedOption = ""
	return s
}

// handleDiet answers a one-shot diet-advice query, against the current case
// when one exists, else against the message text.
func (e *Engine) handleDiet(_ context.Context, s models.ChatState) models.ChatState {
	msg := strings.TrimSpace(s.Message)
	query := s.DiseaseID
	if query == "" {
		query = msg
	}

	// The user clicked the menu button without naming a disease yet.
	if isBareDietSelection(query) {
		s.Response = "Please enter the disease name to get diet advice."
		s.Options = []models.Option{}
		s.Step = models.StepStart
		s.SelectedOption = string(models.TagDietAdvice)
		return s
	}

	advice, err := e.Diet.Advise(query, s.Language)
	if err != nil {
		s.Response = err.Error()
		s.Options = []models.Option{startOverOption("en")}
		s.Step = models.StepStart
		s.SelectedOption = ""
		return s
	}

	var b strings.Builder
	b.WriteString("Diet Advice:\n")
	if len(advice.Do) > 0 {
		b.WriteString("\nEat:\n" + bullets(advice.Do))
	}
	if len(advice.Dont) > 0 {
		b.WriteString("\n\nAvoid:\n" + bullets(advice.Dont))
	}
	if len(advice.HomeRemedies) > 0 {
		b.WriteString("\n\nHome Remedies:\n" + bullets(advice.HomeRemedies))
	}
	s.Response = b.String()
	s.Options = []models.Option{startOverOption("en")}
	s.Step = models.StepStart
	s.SelectedOption = ""
	return s
}

// handleOCR runs the report pipeline and, when the top finding maps to a
// known disease, opens a case for it.
func (e *Engine) handleOCR(ctx context.Context, s models.ChatState) models.ChatState {
	logger := utils.GetLogger()

	result, err := e.OCR.Analyze(ctx, s.Message)
	if err != nil {
		logger.Error("Report analysis failed", zap.Error(err))
		s.Response = "Error processing report: " + err.Error()
		s.Options = []models.Option{startOverOption("en")}
		s.Step = models.StepStart
		s.SelectedOption = ""
		return s
	}

	s.Response = "OCR Text:\n" + result.Text + "\n\nInterpretation:\n" + result.Analysis

	// Report text is English-oriented, so the case continues in English.
	if id, ok := e.KB.ResolveName(result.PredictedDisease); ok {
		s.Options = caseOptions("en")
		s.DiseaseID = id
		s.Language = "en"
		s.Step = models.StepOCRResult
		s.SelectedOption = ""
		return s
	}

	s.Options = []models.Option{startOverOption("en")}
	s.Step = models.StepStart
	s.SelectedOption = ""
	return s
}

// isBareDietSelection recognizes a diet query that is only the menu
// selection itself, not a disease name.
func isBareDietSelection(query string) bool {
	if query == string(models.TagDietAdvice) {
		return true
	}
	return strings.Contains(query, "OPTION_4") && strings.Contains(query, "Diet Advice") && len(query) < 30
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}
