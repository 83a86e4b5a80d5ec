// Package dialog is the conversation flow controller: a finite-state router
// over the session state plus the step handlers it dispatches to.
package dialog

import (
	"strings"

	"swasthya/models"
)

// Decision is the router's verdict for one state: which handler runs next,
// or the end of the turn.
type Decision int

const (
	DecideEnd Decision = iota
	DecideStart
	DecideSymptomChecker
	DecideOCR
	DecideDiseaseInfo
	DecideDiet
	DecideDescription
	DecideRecommendation
)

// Route maps (step, selected option, message) to the next handler. It is a
// pure function; all dispatch happens on option tags, never on display text.
func Route(state models.ChatState) Decision {
	tag := state.SelectedTag()

	// Universal reset from any step.
	if tag == models.TagStartOver {
		return DecideStart
	}

	switch state.Step {
	case models.StepStart:
		if state.SelectedOption == "" {
			return DecideStart
		}
		switch tag {
		case models.TagSymptomChecker:
			return DecideSymptomChecker
		case models.TagScanReport:
			return DecideOCR
		case models.TagDiseaseInfo:
			return DecideDiseaseInfo
		case models.TagDietAdvice:
			return DecideDiet
		}
		return DecideEnd

	case models.StepSymptomInput:
		// Run the checker once real input arrives; otherwise the turn ends
		// and we keep waiting.
		msg := strings.TrimSpace(state.Message)
		if msg != "" && msg != state.SelectedOption && !strings.Contains(msg, "OPTION_1") {
			return DecideSymptomChecker
		}
		return DecideEnd

	case models.StepSymptomResult, models.StepOCRResult:
		switch tag {
		case models.TagDescription:
			return DecideDescription
		case models.TagRecommendation:
			return DecideRecommendation
		}
		return DecideEnd

	// Cross-navigation between the two case panels.
	case models.StepDiseaseDescription:
		if tag == models.TagRecommendation {
			return DecideRecommendation
		}
		return DecideEnd

	case models.StepRecommendation:
		if tag == models.TagDescription {
			return DecideDescription
		}
		return DecideEnd
	}

	return DecideEnd
}

// chains reports whether the handler's outcome feeds back into the router
// within the same turn (the graph's conditional edges) or ends the turn.
func chains(d Decision) bool {
	switch d {
	case DecideSymptomChecker, DecideOCR, DecideDescription, DecideRecommendation:
		return true
	}
	return false
}
