package ports

import (
	"context"

	"fleetcalc/domain/fleet"
	"fleetcalc/internal/analyzer"
)

// ScenarioSource loads a scenario from a named location
type ScenarioSource interface {
	Load(ctx context.Context, ref string) (*fleet.Scenario, error)
}

// ReportSink persists a finished analysis
type ReportSink interface {
	Write(ctx context.Context, ref string, analysis *analyzer.FleetAnalysis) error
}
