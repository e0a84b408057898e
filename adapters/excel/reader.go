package excel

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"fleetcalc/domain/attack"
	"fleetcalc/domain/core"
	"fleetcalc/domain/fleet"
	"fleetcalc/domain/warfare"
	"fleetcalc/internal/errors"
	"fleetcalc/ports"
)

// ScenarioReader loads scenarios from .xlsx workbooks. The Scenario sheet
// holds key/value rows; the Ships sheet holds one ship per row.
type ScenarioReader struct {
	logger *zap.Logger
}

var _ ports.ScenarioSource = (*ScenarioReader)(nil)

// NewScenarioReader creates a workbook scenario reader
func NewScenarioReader(logger *zap.Logger) *ScenarioReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScenarioReader{logger: logger.Named("excel")}
}

// Load reads the workbook at path
func (r *ScenarioReader) Load(ctx context.Context, path string) (*fleet.Scenario, error) {
	start := time.Now()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.NotFound("workbook " + path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.InvalidInput(err.Error()), "failed to open workbook")
	}
	defer f.Close()

	settings, err := readKeyValues(f, ScenarioSheet)
	if err != nil {
		return nil, err
	}
	ships, err := readSheet(f, ShipsSheet)
	if err != nil {
		return nil, err
	}

	scenario, err := buildScenario(settings, ships)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid workbook %s", path)
	}
	if scenario.ID == "" {
		scenario.ID = core.ScenarioID(path)
	}

	r.logger.Info("scenario workbook loaded",
		zap.String("path", path),
		zap.Int("ships", len(ships.Rows)),
		zap.Duration("duration", time.Since(start)))
	return scenario, nil
}

func readKeyValues(f *excelize.File, sheet string) (map[string]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(errors.InvalidInput(err.Error()), "failed to read %s sheet", sheet)
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		out[strings.ToLower(strings.TrimSpace(row[0]))] = strings.TrimSpace(row[1])
	}
	return out, nil
}

func readSheet(f *excelize.File, sheet string) (*ExcelData, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(errors.InvalidInput(err.Error()), "failed to read %s sheet", sheet)
	}
	if len(rows) == 0 {
		return nil, errors.InvalidInput(sheet + " sheet is empty")
	}

	data := &ExcelData{Headers: make([]string, len(rows[0]))}
	for i, h := range rows[0] {
		data.Headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	for _, row := range rows[1:] {
		raw := make(RawRowData, len(data.Headers))
		empty := true
		for i, h := range data.Headers {
			if i < len(row) {
				raw[h] = strings.TrimSpace(row[i])
				empty = empty && raw[h] == ""
			}
		}
		if !empty {
			data.Rows = append(data.Rows, raw)
		}
	}
	return data, nil
}

// cells parses typed values out of string cells, keeping the first error.
type cells struct {
	values map[string]string
	err    error
}

func (c *cells) str(key string) string {
	return c.values[key]
}

func (c *cells) int(key string) int {
	v := c.values[key]
	if v == "" || c.err != nil {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		c.err = errors.InvalidInput(fmt.Sprintf("%s: %q is not an integer", key, v))
	}
	return n
}

func (c *cells) float(key string) float64 {
	v := c.values[key]
	if v == "" || c.err != nil {
		return 0
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		c.err = errors.InvalidInput(fmt.Sprintf("%s: %q is not a number", key, v))
	}
	return n
}

func (c *cells) optFloat(key string) *float64 {
	if c.values[key] == "" {
		return nil
	}
	v := c.float(key)
	return &v
}

func (c *cells) bool(key string) bool {
	v := strings.ToLower(c.values[key])
	if v == "" || c.err != nil {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		c.err = errors.InvalidInput(fmt.Sprintf("%s: %q is not a boolean", key, v))
	}
	return b
}

func (c *cells) kinds(key string) []attack.AntiAirKind {
	var out []attack.AntiAirKind
	for _, part := range strings.Split(c.values[key], ",") {
		part = strings.TrimSpace(part)
		if part == "" || c.err != nil {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			c.err = errors.InvalidInput(fmt.Sprintf("%s: %q is not a cutin kind", key, part))
			continue
		}
		out = append(out, attack.AntiAirKind(n))
	}
	return out
}

func buildScenario(settings map[string]string, ships *ExcelData) (*fleet.Scenario, error) {
	s := &cells{values: settings}
	scenario := &fleet.Scenario{
		ID:         core.ScenarioID(s.str("id")),
		Name:       s.str("name"),
		Engagement: warfare.Engagement(s.str("engagement")),
		AirState:   warfare.AirState(s.str("air_state")),
		Enemy: fleet.Enemy{
			Formation: warfare.Formation(s.str("enemy_formation")),
			ShipIndex: s.int("enemy_ship_index"),
			FleetLen:  s.int("enemy_fleet_len"),
			Target: fleet.TargetSnapshot{
				Name:      s.str("target_name"),
				HP:        s.int("target_hp"),
				MaxHP:     s.int("target_max_hp"),
				Armor:     s.float("target_armor"),
				Evasion:   s.int("target_evasion"),
				Submarine: s.bool("target_submarine"),
				Sinkable:  s.bool("target_sinkable"),
				Protected: s.bool("target_protected"),
			},
		},
	}
	org := warfare.OrgType(s.str("org_type"))
	if org == "" {
		org = warfare.SingleFleet
	}
	formation := warfare.Formation(s.str("formation"))
	losMod := s.optFloat("fleet_los_mod")
	if s.err != nil {
		return nil, s.err
	}

	fleets := map[int]*fleet.Fleet{}
	for i, row := range ships.Rows {
		c := &cells{values: row}
		idx := c.int("fleet")
		if idx == 0 {
			idx = 1
		}
		ship := fleet.ShipSnapshot{
			Name:              c.str("name"),
			Level:             c.int("level"),
			Luck:              c.int("luck"),
			Los:               c.int("los"),
			Morale:            c.int("morale"),
			HP:                c.int("hp"),
			MaxHP:             c.int("max_hp"),
			Firepower:         c.float("firepower"),
			Torpedo:           c.float("torpedo"),
			NakedAsw:          c.int("naked_asw"),
			EquipAsw:          c.float("equip_asw"),
			AswConstant:       c.float("asw_constant"),
			CanAsw:            c.bool("can_asw"),
			CanTorpedo:        c.bool("can_torpedo"),
			EquipAccuracy:     c.float("equip_accuracy"),
			HitRateBonus:      c.float("hit_rate_bonus"),
			CriticalRateBonus: c.float("critical_rate_bonus"),
			Loadout: attack.Loadout{
				MainGuns:      c.int("main_guns"),
				SecondaryGuns: c.int("secondary_guns"),
				Torpedoes:     c.int("torpedoes"),
				Radars:        c.int("radars"),
				APShells:      c.int("ap_shells"),
				Seaplanes:     c.int("seaplanes"),
			},
			AntiAirCutins: c.kinds("anti_air_cutins"),
			FleetCutin:    attack.Style(c.str("fleet_cutin")),
		}
		if slots := c.int("recon_slots"); slots > 0 {
			ship.ReconPlanes = []fleet.ReconPlane{{
				Los:      c.int("recon_los"),
				Accuracy: c.int("recon_accuracy"),
				Slots:    slots,
			}}
		}
		if c.err != nil {
			return nil, errors.Wrapf(c.err, "ships row %d", i+2)
		}

		f, ok := fleets[idx]
		if !ok {
			name, role := "main", warfare.RoleMain
			if idx == 2 {
				name, role = "escort", warfare.RoleEscort
			}
			f = &fleet.Fleet{Name: name, OrgType: org, Role: role, Formation: formation, FleetLosMod: losMod}
			fleets[idx] = f
		}
		f.Ships = append(f.Ships, ship)
	}

	for idx := 1; idx <= len(fleets); idx++ {
		f, ok := fleets[idx]
		if !ok {
			return nil, errors.InvalidInput(fmt.Sprintf("fleet numbers must be consecutive from 1, missing %d", idx))
		}
		scenario.Fleets = append(scenario.Fleets, *f)
	}
	return scenario, nil
}
