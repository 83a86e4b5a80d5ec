package dialog

import (
	"context"

	"go.uber.org/zap"

	"swasthya/models"
	"swasthya/utils"
)

// maxHops bounds the router→handler loop; no legal path needs more.
const maxHops = 5

// Run executes one conversation turn: route, run the chosen handler, and
// repeat while the handler's outcome feeds back into routing. Any handler
// fault is recovered here and turned into a degraded response with a forced
// return to the menu — a turn always yields a usable state.
func (e *Engine) Run(ctx context.Context, state models.ChatState) (final models.ChatState) {
	logger := utils.GetLogger()
	incoming := state

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Handler fault during turn",
				zap.Any("error", r),
				zap.String("step", string(incoming.Step)))
			final = incoming
			final.Response = "Something went wrong while processing your request. Please try again."
			final.Options = []models.Option{startOverOption("en")}
			final.Step = models.StepStart
			final.SelectedOption = ""
		}
	}()

	for hop := 0; hop < maxHops; hop++ {
		decision := Route(state)
		if decision == DecideEnd {
			break
		}

		logger.Debug("Dispatching turn step",
			zap.String("step", string(state.Step)),
			zap.String("selected", state.SelectedOption),
			zap.Int("hop", hop))

		state = e.dispatch(ctx, decision, state)

		// A handler that parks the turn back at the menu step ends it;
		// re-routing would overwrite its response with the menu.
		if !chains(decision) || state.Step == models.StepStart {
			break
		}
	}
	return state
}

func (e *Engine) dispatch(ctx context.Context, d Decision, s models.ChatState) models.ChatState {
	switch d {
	case DecideStart:
		return e.handleStart(ctx, s)
	case DecideSymptomChecker:
		return e.handleSymptomChecker(ctx, s)
	case DecideOCR:
		return e.handleOCR(ctx, s)
	case DecideDiseaseInfo:
		return e.handleDiseaseInfo(ctx, s)
	case DecideDiet:
		return e.handleDiet(ctx, s)
	case DecideDescription:
		return e.handleDescription(ctx, s)
	case DecideRecommendation:
		return e.handleRecommendation(ctx, s)
	}
	return s
}
