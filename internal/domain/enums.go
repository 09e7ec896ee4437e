package domain

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
	Master
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	case Master:
		return "master"
	}
	return "unknown"
}

// ParseDifficulty maps a label to a Difficulty, defaulting to Medium.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	case "master":
		return Master
	default:
		return Medium
	}
}

// Technique identifies a solving technique. TechniqueNone means no
// known technique justifies a move.
type Technique int

const (
	TechniqueNone Technique = iota
	TechniqueNakedSingle
	TechniqueHiddenSingle
	TechniqueCrossHatching // hidden single local to a box, kept distinct for display
	TechniquePointing
	TechniqueClaiming
	TechniqueNakedSubset
	TechniqueHiddenSubset
	TechniqueXWing
	TechniqueSkyscraper
	TechniqueSwordfish
	TechniqueXYWing
	TechniqueXYZWing
	TechniqueBUGPlusOne
)

func (t Technique) String() string {
	switch t {
	case TechniqueNakedSingle:
		return "naked single"
	case TechniqueHiddenSingle:
		return "hidden single"
	case TechniqueCrossHatching:
		return "cross-hatching"
	case TechniquePointing:
		return "locked candidates (pointing)"
	case TechniqueClaiming:
		return "locked candidates (claiming)"
	case TechniqueNakedSubset:
		return "naked subset"
	case TechniqueHiddenSubset:
		return "hidden subset"
	case TechniqueXWing:
		return "x-wing"
	case TechniqueSkyscraper:
		return "skyscraper"
	case TechniqueSwordfish:
		return "swordfish"
	case TechniqueXYWing:
		return "xy-wing"
	case TechniqueXYZWing:
		return "xyz-wing"
	case TechniqueBUGPlusOne:
		return "bug+1"
	}
	return "none"
}

// TechniqueCategory tiers techniques for UI labeling.
type TechniqueCategory int

const (
	CategoryBasic TechniqueCategory = iota
	CategoryIntermediate
	CategoryAdvanced
)

// Category returns the display tier a technique belongs to.
func (t Technique) Category() TechniqueCategory {
	switch t {
	case TechniqueNakedSingle, TechniqueHiddenSingle, TechniqueCrossHatching:
		return CategoryBasic
	case TechniquePointing, TechniqueClaiming, TechniqueNakedSubset, TechniqueHiddenSubset:
		return CategoryIntermediate
	default:
		return CategoryAdvanced
	}
}
