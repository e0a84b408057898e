package warfare

// FormationMods are formation multipliers for one side in one phase.
type FormationMods struct {
	Power    float64
	Accuracy float64
	Evasion  float64
}

type formationRow struct {
	shelling, torpedo, night, asw FormationMods
}

var identityMods = FormationMods{Power: 1, Accuracy: 1, Evasion: 1}

var formationTable = map[Formation]formationRow{
	LineAhead: {
		shelling: FormationMods{Power: 1.0, Accuracy: 1.0, Evasion: 1.0},
		torpedo:  FormationMods{Power: 1.0, Accuracy: 1.0, Evasion: 1.0},
		night:    identityMods,
		asw:      FormationMods{Power: 0.6, Accuracy: 1.0, Evasion: 1.0},
	},
	DoubleLine: {
		shelling: FormationMods{Power: 0.8, Accuracy: 1.2, Evasion: 1.0},
		torpedo:  FormationMods{Power: 0.8, Accuracy: 0.8, Evasion: 1.0},
		night:    identityMods,
		asw:      FormationMods{Power: 0.8, Accuracy: 1.2, Evasion: 1.0},
	},
	Diamond: {
		shelling: FormationMods{Power: 0.7, Accuracy: 1.0, Evasion: 1.1},
		torpedo:  FormationMods{Power: 0.7, Accuracy: 0.4, Evasion: 1.1},
		night:    identityMods,
		asw:      FormationMods{Power: 1.2, Accuracy: 1.0, Evasion: 1.1},
	},
	Echelon: {
		shelling: FormationMods{Power: 0.75, Accuracy: 1.2, Evasion: 1.4},
		torpedo:  FormationMods{Power: 0.6, Accuracy: 0.6, Evasion: 1.3},
		night:    FormationMods{Power: 1.0, Accuracy: 0.9, Evasion: 1.3},
		asw:      FormationMods{Power: 1.1, Accuracy: 1.2, Evasion: 1.3},
	},
	LineAbreast: {
		shelling: FormationMods{Power: 0.6, Accuracy: 1.2, Evasion: 1.3},
		torpedo:  FormationMods{Power: 0.6, Accuracy: 0.3, Evasion: 1.4},
		night:    FormationMods{Power: 1.0, Accuracy: 0.8, Evasion: 1.2},
		asw:      FormationMods{Power: 1.3, Accuracy: 1.3, Evasion: 1.3},
	},
}

// vanguard modifiers split by fleet half
var vanguardTop = formationRow{
	shelling: FormationMods{Power: 0.5, Accuracy: 0.8, Evasion: 1.1},
	torpedo:  FormationMods{Power: 1.0, Accuracy: 1.0, Evasion: 1.1},
	night:    FormationMods{Power: 0.5, Accuracy: 0.9, Evasion: 1.1},
	asw:      FormationMods{Power: 1.0, Accuracy: 1.0, Evasion: 1.1},
}

var vanguardBottom = formationRow{
	shelling: FormationMods{Power: 1.0, Accuracy: 1.2, Evasion: 1.2},
	torpedo:  FormationMods{Power: 1.0, Accuracy: 1.0, Evasion: 1.4},
	night:    FormationMods{Power: 1.0, Accuracy: 1.2, Evasion: 1.3},
	asw:      FormationMods{Power: 0.6, Accuracy: 1.0, Evasion: 1.3},
}

// Mods returns the formation multipliers for the ship in phase. An unknown
// formation yields the identity.
func (e ShipEnv) Mods(phase Phase) FormationMods {
	var row formationRow
	switch {
	case e.Formation == Vanguard && e.InVanguardTop():
		row = vanguardTop
	case e.Formation == Vanguard:
		row = vanguardBottom
	default:
		r, ok := formationTable[e.Formation]
		if !ok {
			return identityMods
		}
		row = r
	}

	switch phase {
	case PhaseShelling:
		return row.shelling
	case PhaseTorpedo:
		return row.torpedo
	case PhaseNight:
		return row.night
	case PhaseAsw:
		return row.asw
	default:
		return identityMods
	}
}

// PowerMod is the engagement power multiplier. Night battle ignores it.
func (e Engagement) PowerMod(phase Phase) float64 {
	if phase == PhaseNight {
		return 1
	}
	switch e {
	case GreenT:
		return 1.2
	case HeadOn:
		return 0.8
	case RedT:
		return 0.6
	default:
		return 1
	}
}

// BasicPowerOffset is the fleet organization constant added to basic
// power in day phases.
func (e ShipEnv) BasicPowerOffset(phase Phase) float64 {
	switch phase {
	case PhaseShelling:
		return shellingOffset(e.OrgType, e.Role)
	case PhaseTorpedo:
		if e.OrgType.IsCombined() {
			return 0
		}
		return 5
	default:
		return 0
	}
}

func shellingOffset(org OrgType, role Role) float64 {
	switch org {
	case CarrierTaskForce:
		if role == RoleEscort {
			return 10
		}
		return 2
	case SurfaceTaskForce:
		if role == RoleEscort {
			return -5
		}
		return 10
	case TransportEscort:
		if role == RoleEscort {
			return 10
		}
		return -5
	default:
		return 5
	}
}
