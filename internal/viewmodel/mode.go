package viewmodel

// Mode tags which paginated workflow a result belongs to.
type Mode int

const (
	ModeLoad Mode = iota
	ModeLoadMore
)

func (m Mode) String() string {
	switch m {
	case ModeLoad:
		return "load"
	case ModeLoadMore:
		return "load_more"
	default:
		return "unknown"
	}
}

// modeFor derives the workflow from the cursor: no cursor means a fresh load.
func modeFor(nextPageID string) Mode {
	if nextPageID == "" {
		return ModeLoad
	}
	return ModeLoadMore
}
