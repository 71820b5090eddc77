package models

import "fmt"

// LoadMode controls how a generated batch is reconciled with existing rows.
type LoadMode int

const (
	// ModeReplace discards all prior rows and writes the generated batch.
	ModeReplace LoadMode = iota
	// ModeInsert appends the generated batch without touching prior rows.
	ModeInsert
	// ModeMerge keeps prior rows and upserts the batch by primary key.
	ModeMerge
)

// ParseLoadMode converts the CLI mode selector into a LoadMode.
func ParseLoadMode(s string) (LoadMode, error) {
	switch s {
	case "replace":
		return ModeReplace, nil
	case "insert":
		return ModeInsert, nil
	case "merge":
		return ModeMerge, nil
	default:
		return ModeReplace, fmt.Errorf("invalid load mode %q (expected replace, insert or merge)", s)
	}
}

func (m LoadMode) String() string {
	switch m {
	case ModeReplace:
		return "replace"
	case ModeInsert:
		return "insert"
	case ModeMerge:
		return "merge"
	default:
		return fmt.Sprintf("LoadMode(%d)", int(m))
	}
}
