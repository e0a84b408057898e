package excel

// RawRowData represents a row of raw Excel data as header-keyed strings
type RawRowData map[string]string

// ExcelData represents one sheet read into header-keyed rows
type ExcelData struct {
	Headers []string     // Column headers
	Rows    []RawRowData // Data rows
}

// Workbook sheet names
const (
	ScenarioSheet = "Scenario"
	ShipsSheet    = "Ships"
	SummarySheet  = "Summary"
	StylesSheet   = "Styles"
)

// ShipColumns is the header row of the ships sheet.
var ShipColumns = []string{
	"fleet", "name", "level", "luck", "los", "morale", "hp", "max_hp",
	"firepower", "torpedo", "naked_asw", "equip_asw", "asw_constant", "can_asw", "can_torpedo",
	"equip_accuracy", "hit_rate_bonus", "critical_rate_bonus",
	"main_guns", "secondary_guns", "torpedoes", "radars", "ap_shells", "seaplanes",
	"recon_los", "recon_accuracy", "recon_slots",
	"anti_air_cutins", "fleet_cutin",
}

// StyleColumns is the header row of the styles sheet.
var StyleColumns = []string{
	"fleet", "ship", "event", "style", "proc_rate", "approximate",
	"power_normal", "power_critical", "hit_rate", "critical_rate",
	"expected_damage", "sink_rate",
}
