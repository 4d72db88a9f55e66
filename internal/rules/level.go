package rules

import "fmt"

// Level is the aggregate content-intensity rating for a card.
// Levels are totally ordered: basic < mild < medium < severe.
type Level int

const (
	LevelBasic Level = iota
	LevelMild
	LevelMedium
	LevelSevere
)

func (l Level) String() string {
	switch l {
	case LevelMild:
		return "mild"
	case LevelMedium:
		return "medium"
	case LevelSevere:
		return "severe"
	default:
		return "basic"
	}
}

func ParseLevel(s string) (Level, error) {
	switch s {
	case "basic":
		return LevelBasic, nil
	case "mild":
		return LevelMild, nil
	case "medium":
		return LevelMedium, nil
	case "severe":
		return LevelSevere, nil
	default:
		return LevelBasic, fmt.Errorf("unknown level %q", s)
	}
}
