package service

import (
	"fmt"

	"probplay/models"
	"probplay/probability"
)

// analyzeChoices builds the expected-value table for a set of choices and flags the one
// with the highest raw expected value. Ties go to the earliest choice.
func analyzeChoices(choices []models.ChoiceAnalysis, ds []probability.Distribution) ([]models.ChoiceAnalysis, error) {
	best, err := probability.BestChoice(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to pick best choice: %w", err)
	}
	for i := range choices {
		ev := probability.ExpectedValue(ds[i])
		choices[i].ExpectedValue = ev
		choices[i].NetExpected = ev - float64(choices[i].Cost)
		choices[i].Best = i == best
	}
	return choices, nil
}
