package cpu

// Quirks selects between behaviours that differ across CHIP-8
// interpreters. ROMs written for one lineage can misbehave on another, so
// each point of divergence is a separate switch.
type Quirks struct {
	// ShiftSourceVY makes 8XY6 and 8XYE shift VY into VX. When false, VX
	// is shifted in place and VY is ignored.
	ShiftSourceVY bool
	// LogicResetsVF makes 8XY1, 8XY2 and 8XY3 clear VF after the result.
	LogicResetsVF bool
	// LoadStoreIncrementsI leaves I pointing past the last register
	// transferred by FX55 and FX65.
	LoadStoreIncrementsI bool
	// ClipSprites drops sprite pixels past the right and bottom edges.
	// When false, they wrap around to the opposite edge.
	ClipSprites bool
	// KeyWaitRelease makes FX0A complete when the captured key is released
	// rather than when it is pressed.
	KeyWaitRelease bool
}

var (
	// DefaultQuirks is the behaviour used unless configured otherwise.
	DefaultQuirks = Quirks{
		ShiftSourceVY:        true,
		LogicResetsVF:        true,
		LoadStoreIncrementsI: true,
		ClipSprites:          true,
	}
	// VIPQuirks mirrors the COSMAC VIP interpreter, which also waited for
	// the key to be let go in FX0A.
	VIPQuirks = Quirks{
		ShiftSourceVY:        true,
		LogicResetsVF:        true,
		LoadStoreIncrementsI: true,
		ClipSprites:          true,
		KeyWaitRelease:       true,
	}
	// SuperChipQuirks mirrors CHIP-48 and SUPER-CHIP.
	SuperChipQuirks = Quirks{
		ClipSprites: true,
	}
)

// QuirksByName returns the preset with the given name: "default", "vip"
// or "schip".
func QuirksByName(name string) (Quirks, bool) {
	switch name {
	case "default", "":
		return DefaultQuirks, true
	case "vip":
		return VIPQuirks, true
	case "schip", "superchip":
		return SuperChipQuirks, true
	}
	return Quirks{}, false
}
