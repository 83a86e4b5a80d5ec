package dialog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"swasthya/knowledge"
	"swasthya/models"
	"swasthya/services/diet"
)

type fakePredictor struct {
	pred    *models.Prediction
	err     error
	gotText string
}

func (f *fakePredictor) Predict(_ context.Context, text string) (*models.Prediction, error) {
	f.gotText = text
	return f.pred, f.err
}

type panicPredictor struct{}

func (panicPredictor) Predict(context.Context, string) (*models.Prediction, error) {
	panic("predictor blew up")
}

type fakePipeline struct {
	result *models.ReportAnalysis
	err    error
}

func (f *fakePipeline) Analyze(context.Context, string) (*models.ReportAnalysis, error) {
	return f.result, f.err
}

func testKB() *knowledge.Base {
	records := []models.DiseaseRecord{
		{
			DiseaseID:   "0",
			Lang:        "en",
			DiseaseName: "Anemia",
			Aliases:     []string{"low hemoglobin"},
			Definition:  "A condition with too few healthy red blood cells.",
			Symptoms:    []string{"fatigue", "pallor"},
		},
		{
			DiseaseID:   "0",
			Lang:        "hi",
			DiseaseName: "एनीमिया",
			Definition:  "स्वस्थ लाल रक्त कोशिकाओं की कमी।",
			Symptoms:    []string{"थकान"},
		},
		{
			DiseaseID:   "3",
			Lang:        "en",
			DiseaseName: "Tuberculosis",
			Definition:  "A bacterial infection of the lungs.",
			Symptoms:    []string{"persistent cough"},
		},
	}
	recs := []knowledge.RecommendationEntry{
		{
			DiseaseID: "0",
			Lang:      "en",
			Recommendation: models.Prescription{
				Do:           []string{"eat iron-rich food"},
				Dont:         []string{"skip meals"},
				HomeRemedies: []string{"dates and jaggery"},
			},
		},
	}
	return knowledge.NewBase(records, recs)
}

func testEngine(pred *fakePredictor, pipe *fakePipeline) *Engine {
	kb := testKB()
	if pred == nil {
		pred = &fakePredictor{}
	}
	if pipe == nil {
		pipe = &fakePipeline{}
	}
	return NewEngine(kb, pred, pipe, diet.NewKBAdvisor(kb))
}

func optionTags(options []models.Option) []models.OptionTag {
	tags := make([]models.OptionTag, len(options))
	for i, o := range options {
		tags[i] = o.Tag
	}
	return tags
}

func assertTags(t *testing.T, options []models.Option, want ...models.OptionTag) {
	t.Helper()
	got := optionTags(options)
	if len(got) != len(want) {
		t.Fatalf("options = %v, want tags %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("options = %v, want tags %v", got, want)
		}
	}
}

func TestTurnShowsMenu(t *testing.T) {
	e := testEngine(nil, nil)
	out := e.Run(context.Background(), models.ChatState{Step: models.StepStart})

	if out.Step != models.StepStart {
		t.Errorf("step = %q, want start", out.Step)
	}
	if out.Response != "Please select a service:" {
		t.Errorf("response = %q", out.Response)
	}
	assertTags(t, out.Options,
		models.TagSymptomChecker, models.TagScanReport, models.TagDiseaseInfo, models.TagDietAdvice)
}

func TestTurnStartOverClearsCase(t *testing.T) {
	e := testEngine(nil, nil)
	out := e.Run(context.Background(), models.ChatState{
		Step:           models.StepRecommendation,
		SelectedOption: "Start Over",
		DiseaseID:      "0",
		Urgency:        "High Urgency",
		ViewedSections: []string{models.SectionDescription, models.SectionRecommendation},
	})

	if out.Step != models.StepStart {
		t.Errorf("step = %q, want start", out.Step)
	}
	if out.DiseaseID != "" || out.Urgency != "" {
		t.Errorf("case not cleared: disease_id=%q urgency=%q", out.DiseaseID, out.Urgency)
	}
	if len(out.ViewedSections) != 0 {
		t.Errorf("viewed_sections not cleared: %v", out.ViewedSections)
	}
}

func TestTurnSymptomPrompt(t *testing.T) {
	e := testEngine(nil, nil)
	out := e.Run(context.Background(), models.ChatState{
		Step:           models.StepStart,
		SelectedOption: "OPTION_1: Symptom Checker",
		Message:        "OPTION_1: Symptom Checker",
	})

	if out.Step != models.StepSymptomInput {
		t.Errorf("step = %q, want symptom_input", out.Step)
	}
	if out.Response != "Please describe your symptoms in detail" {
		t.Errorf("response = %q", out.Response)
	}
	if len(out.Options) != 0 {
		t.Errorf("prompt must offer no options, got %v", out.Options)
	}
}

func TestTurnSymptomResult(t *testing.T) {
	pred := &fakePredictor{pred: &models.Prediction{
		Language:    "en",
		DiseaseID:   "0",
		DiseaseName: "anemia",
		UrgencyID:   1,
		UrgencyName: "Medium Urgency",
	}}
	e := testEngine(pred, nil)

	out := e.Run(context.Background(), models.ChatState{
		Step:     models.StepSymptomInput,
		Message:  "fever and constant tiredness",
		Language: "en",
	})

	if pred.gotText != "fever and constant tiredness" {
		t.Errorf("predictor got %q", pred.gotText)
	}
	if out.Step != models.StepSymptomResult {
		t.Errorf("step = %q, want symptom_result", out.Step)
	}
	if out.DiseaseID != "0" || out.Urgency != "Medium Urgency" {
		t.Errorf("case fields = (%q, %q)", out.DiseaseID, out.Urgency)
	}
	// The knowledge base's name is preferred over the raw model output.
	if !strings.Contains(out.Response, "identified: Anemia") {
		t.Errorf("response = %q", out.Response)
	}
	if !strings.Contains(out.Response, "Urgency Level: Medium Urgency") {
		t.Errorf("response = %q", out.Response)
	}
	assertTags(t, out.Options, models.TagDescription, models.TagRecommendation, models.TagStartOver)
}

func TestTurnSymptomResultLocalized(t *testing.T) {
	pred := &fakePredictor{pred: &models.Prediction{
		Language:    "hi",
		DiseaseID:   "0",
		DiseaseName: "anemia",
		UrgencyName: "मध्यम तात्कालिकता",
	}}
	e := testEngine(pred, nil)

	out := e.Run(context.Background(), models.ChatState{
		Step:    models.StepSymptomInput,
		Message: "बुखार और थकान",
	})

	if out.Language != "hi" {
		t.Errorf("language = %q, want hi", out.Language)
	}
	if !strings.Contains(out.Response, "एनीमिया") {
		t.Errorf("response not localized: %q", out.Response)
	}
	if !strings.Contains(out.Response, "तात्कालिकता स्तर:") {
		t.Errorf("response not localized: %q", out.Response)
	}
}

func TestTurnPredictorDeclines(t *testing.T) {
	e := testEngine(&fakePredictor{}, nil)
	out := e.Run(context.Background(), models.ChatState{
		Step:    models.StepSymptomInput,
		Message: "gibberish input",
	})

	if out.Step != models.StepStart {
		t.Errorf("step = %q, want start", out.Step)
	}
	if !strings.Contains(out.Response, "Model returned no result") {
		t.Errorf("response = %q", out.Response)
	}
	assertTags(t, out.Options, models.TagStartOver)
}

func TestTurnPredictorError(t *testing.T) {
	e := testEngine(&fakePredictor{err: errors.New("predictor unreachable")}, nil)
	out := e.Run(context.Background(), models.ChatState{
		Step:    models.StepSymptomInput,
		Message: "fever",
	})

	if out.Step != models.StepStart {
		t.Errorf("step = %q, want start", out.Step)
	}
	if !strings.Contains(out.Response, "Error processing symptoms: predictor unreachable") {
		t.Errorf("response = %q", out.Response)
	}
}

func TestTurnDescriptionThenRecommendation(t *testing.T) {
	e := testEngine(nil, nil)

	state := e.Run(context.Background(), models.ChatState{
		Step:           models.StepSymptomResult,
		SelectedOption: "disease_description",
		DiseaseID:      "0",
		Language:       "en",
		ViewedSections: []string{},
	})

	if state.Step != models.StepDiseaseDescription {
		t.Fatalf("step = %q, want disease_description", state.Step)
	}
	if !strings.Contains(state.Response, "Disease: Anemia") ||
		!strings.Contains(state.Response, "too few healthy red blood cells") ||
		!strings.Contains(state.Response, "fatigue, pallor") {
		t.Errorf("response = %q", state.Response)
	}
	if !state.HasViewed(models.SectionDescription) {
		t.Error("description not marked viewed")
	}
	assertTags(t, state.Options, models.TagRecommendation, models.TagStartOver)

	state.SelectedOption = "diet_recommendation"
	state = e.Run(context.Background(), state)

	if state.Step != models.StepRecommendation {
		t.Fatalf("step = %q, want recommendation", state.Step)
	}
	if !strings.Contains(state.Response, "Recommendations:") ||
		!strings.Contains(state.Response, "- eat iron-rich food") ||
		!strings.Contains(state.Response, "- skip meals") ||
		!strings.Contains(state.Response, "- dates and jaggery") {
		t.Errorf("response = %q", state.Response)
	}
	if !state.HasViewed(models.SectionDescription) || !state.HasViewed(models.SectionRecommendation) {
		t.Errorf("viewed_sections = %v, want both", state.ViewedSections)
	}
	// Both panels seen: only the reset remains.
	assertTags(t, state.Options, models.TagStartOver)

	// Navigating back to the description panel offers no further detours.
	state.SelectedOption = "disease_description"
	state = e.Run(context.Background(), state)
	if state.Step != models.StepDiseaseDescription {
		t.Fatalf("step = %q, want disease_description", state.Step)
	}
	assertTags(t, state.Options, models.TagStartOver)
}

func TestTurnRecommendationNoData(t *testing.T) {
	e := testEngine(nil, nil)
	out := e.Run(context.Background(), models.ChatState{
		Step:           models.StepSymptomResult,
		SelectedOption: "diet_recommendation",
		DiseaseID:      "3",
		Language:       "en",
	})

	if out.Step != models.StepStart {
		t.Errorf("step = %q, want start", out.Step)
	}
	if out.Response != "No recommendation data available." {
		t.Errorf("response = %q", out.Response)
	}
	assertTags(t, out.Options, models.TagStartOver)
}

func TestTurnOCRKnownDisease(t *testing.T) {
	pipe := &fakePipeline{result: &models.ReportAnalysis{
		Text:             "hemoglobin 10 ferritin 20",
		Analysis:         "POSSIBLE CONDITIONS:\n• Anemia",
		PredictedDisease: "Anemia",
	}}
	e := testEngine(nil, pipe)

	out := e.Run(context.Background(), models.ChatState{
		Step:           models.StepStart,
		SelectedOption: "scan_report",
		Message:        "https://reports.example/cbc.jpg",
	})

	if out.Step != models.StepOCRResult {
		t.Errorf("step = %q, want ocr_result", out.Step)
	}
	if out.DiseaseID != "0" || out.Language != "en" {
		t.Errorf("case fields = (%q, %q)", out.DiseaseID, out.Language)
	}
	if !strings.Contains(out.Response, "OCR Text:\nhemoglobin 10 ferritin 20") ||
		!strings.Contains(out.Response, "Interpretation:") {
		t.Errorf("response = %q", out.Response)
	}
	assertTags(t, out.Options, models.TagDescription, models.TagRecommendation, models.TagStartOver)
}

func TestTurnOCRUnresolvedFinding(t *testing.T) {
	pipe := &fakePipeline{result: &models.ReportAnalysis{
		Text:             "all values in range",
		Analysis:         "MOST LIKELY CONDITION:\n→ No significant abnormality detected",
		PredictedDisease: "No significant abnormality detected",
	}}
	e := testEngine(nil, pipe)

	out := e.Run(context.Background(), models.ChatState{
		Step:           models.StepStart,
		SelectedOption: "scan_report",
		Message:        "https://reports.example/cbc.jpg",
	})

	if out.Step != models.StepStart {
		t.Errorf("step = %q, want start", out.Step)
	}
	// The interpretation must survive; only the follow-up case is skipped.
	if !strings.Contains(out.Response, "OCR Text:") {
		t.Errorf("response lost the interpretation: %q", out.Response)
	}
	if out.DiseaseID != "" {
		t.Errorf("disease_id = %q, want empty", out.DiseaseID)
	}
	assertTags(t, out.Options, models.TagStartOver)
}

func TestTurnOCRError(t *testing.T) {
	pipe := &fakePipeline{err: errors.New("ocr provider returned status 500")}
	e := testEngine(nil, pipe)

	out := e.Run(context.Background(), models.ChatState{
		Step:           models.StepStart,
		SelectedOption: "scan_report",
		Message:        "https://reports.example/cbc.jpg",
	})

	if out.Step != models.StepStart {
		t.Errorf("step = %q, want start", out.Step)
	}
	if !strings.Contains(out.Response, "Error processing report: ocr provider returned status 500") {
		t.Errorf("response = %q", out.Response)
	}
}

func TestTurnDiseaseInfo(t *testing.T) {
	e := testEngine(nil, nil)
	out := e.Run(context.Background(), models.ChatState{
		Step:           models.StepStart,
		SelectedOption: "disease_info",
		Message:        "anemia",
	})

	if out.Step != models.StepStart {
		t.Errorf("step = %q, want start", out.Step)
	}
	if !strings.Contains(out.Response, "Disease: Anemia") ||
		!strings.Contains(out.Response, "Definition: A condition") {
		t.Errorf("response = %q", out.Response)
	}
}

func TestTurnDiseaseInfoMiss(t *testing.T) {
	e := testEngine(nil, nil)
	out := e.Run(context.Background(), models.ChatState{
		Step:           models.StepStart,
		SelectedOption: "disease_info",
		Message:        "unknownitis",
	})

	if out.Response != "Disease not found." {
		t.Errorf("response = %q", out.Response)
	}
	if out.Step != models.StepStart {
		t.Errorf("step = %q, want start", out.Step)
	}
}

func TestTurnDietAdviceByName(t *testing.T) {
	e := testEngine(nil, nil)
	out := e.Run(context.Background(), models.ChatState{
		Step:           models.StepStart,
		SelectedOption: "diet_advice",
		Message:        "low hemoglobin",
		Language:       "en",
	})

	if out.Step != models.StepStart {
		t.Errorf("step = %q, want start", out.Step)
	}
	if !strings.Contains(out.Response, "Diet Advice:") ||
		!strings.Contains(out.Response, "Eat:\n- eat iron-rich food") ||
		!strings.Contains(out.Response, "Avoid:\n- skip meals") {
		t.Errorf("response = %q", out.Response)
	}
}

func TestTurnDietAdviceUsesOpenCase(t *testing.T) {
	e := testEngine(nil, nil)
	out := e.Run(context.Background(), models.ChatState{
		Step:           models.StepStart,
		SelectedOption: "diet_advice",
		DiseaseID:      "0",
		Language:       "en",
	})

	if !strings.Contains(out.Response, "Diet Advice:") {
		t.Errorf("response = %q", out.Response)
	}
}

func TestTurnDietBareSelectionReprompts(t *testing.T) {
	e := testEngine(nil, nil)
	out := e.Run(context.Background(), models.ChatState{
		Step:           models.StepStart,
		SelectedOption: "OPTION_4: Diet Advice",
		Message:        "OPTION_4: Diet Advice",
	})

	if out.Response != "Please enter the disease name to get diet advice." {
		t.Errorf("response = %q", out.Response)
	}
	if out.Step != models.StepStart || out.SelectedOption != "diet_advice" {
		t.Errorf("state = (step=%q, selected=%q)", out.Step, out.SelectedOption)
	}
}

func TestTurnDietUnknownDisease(t *testing.T) {
	e := testEngine(nil, nil)
	out := e.Run(context.Background(), models.ChatState{
		Step:           models.StepStart,
		SelectedOption: "diet_advice",
		Message:        "unknownitis",
		Language:       "en",
	})

	if !strings.Contains(out.Response, "Disease 'unknownitis' not found") {
		t.Errorf("response = %q", out.Response)
	}
	if out.Step != models.StepStart {
		t.Errorf("step = %q, want start", out.Step)
	}
}

func TestTurnRecoversFromHandlerPanic(t *testing.T) {
	kb := testKB()
	e := NewEngine(kb, panicPredictor{}, &fakePipeline{}, diet.NewKBAdvisor(kb))

	out := e.Run(context.Background(), models.ChatState{
		Step:    models.StepSymptomInput,
		Message: "fever",
	})

	if out.Step != models.StepStart {
		t.Errorf("step = %q, want start", out.Step)
	}
	if !strings.Contains(out.Response, "Something went wrong") {
		t.Errorf("response = %q", out.Response)
	}
	assertTags(t, out.Options, models.TagStartOver)
}
