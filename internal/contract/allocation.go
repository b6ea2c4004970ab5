package contract

import "github.com/cbridge/nestegg/internal/service"

type AllocationResult = service.AllocationResult

type GoalAllocationOutcome = service.GoalAllocationOutcome

type AccrualResult = service.AccrualResult

type GoalAccrualOutcome = service.GoalAccrualOutcome

type ImportResult = service.ImportResult
