package session

import (
	"context"
	"fmt"
)

// OnboardingWizard drives a sequence of form sessions through their
// Submittable capability. It stops at the first step that fails so the flow
// never advances past an unsaved form.
type OnboardingWizard struct {
	steps []Submittable
}

func NewOnboardingWizard(steps ...Submittable) *OnboardingWizard {
	return &OnboardingWizard{steps: steps}
}

// Run submits every step in order. It returns the number of steps that were
// accepted; the error belongs to the step that halted the flow.
func (w *OnboardingWizard) Run(ctx context.Context) (int, error) {
	for i, step := range w.steps {
		ok, err := step.AttemptSubmit(ctx)
		if err != nil {
			return i, fmt.Errorf("onboarding halted at step %d: %w", i+1, err)
		}
		if !ok {
			return i, fmt.Errorf("onboarding halted at step %d", i+1)
		}
	}
	return len(w.steps), nil
}
