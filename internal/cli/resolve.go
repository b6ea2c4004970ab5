package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveHouseholdID turns user input into a household ID. Input may be a
// household name, a full UUID, or a UUID prefix.
func resolveHouseholdID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("household is required")
	}

	households, err := app.Households.List(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact name match (case-insensitive)
	for _, h := range households {
		if strings.EqualFold(h.Name, input) {
			return h.ID, nil
		}
	}

	// 2. Exact UUID match
	for _, h := range households {
		if h.ID == input {
			return h.ID, nil
		}
	}

	// 3. UUID prefix match
	var matches []string
	for _, h := range households {
		if strings.HasPrefix(h.ID, input) {
			matches = append(matches, h.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("household not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("household %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveGoalID turns user input into a goal ID within a household.
// Input may be a full UUID or a UUID prefix.
func resolveGoalID(ctx context.Context, app *App, householdID, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("goal ID is required")
	}

	goals, err := app.Goals.ListByHousehold(ctx, householdID)
	if err != nil {
		return "", err
	}

	for _, g := range goals {
		if g.ID == input {
			return g.ID, nil
		}
	}

	var matches []string
	for _, g := range goals {
		if strings.HasPrefix(g.ID, input) {
			matches = append(matches, g.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("goal not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("goal ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
