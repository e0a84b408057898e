package app

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fleetcalc/domain/core"
	"fleetcalc/domain/fleet"
	"fleetcalc/internal/analyzer"
	"fleetcalc/internal/errors"
	"fleetcalc/ports"
)

// FleetAnalysis is the result of one scenario analysis.
type FleetAnalysis = analyzer.FleetAnalysis

// AnalysisService analyzes scenarios, fanning ships out across a bounded
// worker pool.
type AnalysisService struct {
	analyzer *analyzer.Analyzer
	source   ports.ScenarioSource
	workers  int
	logger   *zap.Logger
}

// NewAnalysisService creates an analysis service. source may be nil when
// scenarios are only passed in directly.
func NewAnalysisService(a *analyzer.Analyzer, source ports.ScenarioSource, workers int, logger *zap.Logger) *AnalysisService {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{
		analyzer: a,
		source:   source,
		workers:  workers,
		logger:   logger.Named("analysis"),
	}
}

// Analyze validates the scenario and computes every ship and fleet event.
func (s *AnalysisService) Analyze(ctx context.Context, scenario *fleet.Scenario) (*FleetAnalysis, error) {
	if scenario == nil {
		return nil, errors.InvalidInput("scenario is required")
	}
	if err := scenario.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid scenario")
	}

	fingerprint, err := core.Fingerprint(scenario)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fingerprint scenario")
	}

	start := time.Now()
	out := &FleetAnalysis{
		ID:           core.NewAnalysisID(),
		ScenarioID:   scenario.ID,
		ScenarioName: scenario.Name,
		Fingerprint:  fingerprint,
		CreatedAt:    core.Now(),
		Target:       scenario.Enemy.Target.Name,
		Fleets:       make([]analyzer.FleetSummary, len(scenario.Fleets)),
	}
	log := s.logger.With(zap.String("analysis_id", out.ID.String()), zap.String("fingerprint", fingerprint.Short()))

	type slot struct{ fleet, ship int }
	var slots []slot
	for fi, f := range scenario.Fleets {
		for si := range f.Ships {
			slots = append(slots, slot{fi, si})
		}
	}
	out.Ships = make([]analyzer.ShipAnalysis, len(slots))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, sl := range slots {
		i, sl := i, sl
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out.Ships[i] = s.analyzer.Ship(scenario, sl.fleet, sl.ship)
			log.Debug("ship analyzed", zap.String("ship", out.Ships[i].Name), zap.Int("fleet", sl.fleet))
			return nil
		})
	}
	for fi := range scenario.Fleets {
		fi := fi
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out.Fleets[fi] = s.analyzer.Fleet(scenario, fi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "analysis cancelled")
	}

	log.Info("analysis complete",
		zap.Int("ships", len(out.Ships)),
		zap.Duration("duration", time.Since(start)))
	return out, nil
}

// AnalyzeRef loads a scenario from the configured source and analyzes it.
func (s *AnalysisService) AnalyzeRef(ctx context.Context, ref string) (*FleetAnalysis, error) {
	if s.source == nil {
		return nil, errors.InternalError("no scenario source configured")
	}
	scenario, err := s.source.Load(ctx, ref)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load scenario %s", ref)
	}
	return s.Analyze(ctx, scenario)
}

// Export analyzes the scenario at ref and hands the result to sink.
func (s *AnalysisService) Export(ctx context.Context, ref string, sink ports.ReportSink, out string) (*FleetAnalysis, error) {
	analysis, err := s.AnalyzeRef(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := sink.Write(ctx, out, analysis); err != nil {
		return nil, errors.Wrapf(err, "failed to write report %s", out)
	}
	s.logger.Info("report exported", zap.String("analysis_id", analysis.ID.String()), zap.String("path", out))
	return analysis, nil
}
