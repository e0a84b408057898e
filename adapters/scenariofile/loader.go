// Package scenariofile loads scenarios from JSON files on disk.
package scenariofile

import (
	"bytes"
	"context"
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"fleetcalc/domain/core"
	"fleetcalc/domain/fleet"
	"fleetcalc/internal/errors"
	"fleetcalc/ports"
)

// Loader reads scenario JSON documents
type Loader struct {
	logger *zap.Logger
}

var _ ports.ScenarioSource = (*Loader)(nil)

// NewLoader creates a JSON scenario loader
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger.Named("scenariofile")}
}

// Load reads and decodes the scenario at path
func (l *Loader) Load(ctx context.Context, path string) (*fleet.Scenario, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.NotFound("scenario " + path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	scenario, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}
	if scenario.ID == "" {
		scenario.ID = core.ScenarioID(path)
	}
	l.logger.Debug("scenario loaded", zap.String("path", path), zap.Int("fleets", len(scenario.Fleets)))
	return scenario, nil
}

// Decode parses a scenario document, rejecting unknown fields.
func Decode(data []byte) (*fleet.Scenario, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var scenario fleet.Scenario
	if err := dec.Decode(&scenario); err != nil {
		return nil, errors.InvalidInput("malformed scenario: " + err.Error())
	}
	return &scenario, nil
}
