// Package contract re-exports the service layer's result types under a
// stable name for the CLI and its formatters.
package contract

import "github.com/cbridge/nestegg/internal/service"

type HouseholdReport = service.HouseholdReport

type TypeSection = service.TypeSection

type GoalReport = service.GoalReport
