package sda

import "github.com/archivekit/sda/internal/h5io"

// Mode selects how Open accesses the archive, mirroring spec.md §4.4's
// five open modes.
type Mode = h5io.Mode

const (
	// ModeRead opens an existing archive read-only ("r").
	ModeRead = h5io.ModeRead
	// ModeReadWrite opens an existing archive for read/write ("r+").
	ModeReadWrite = h5io.ModeReadWrite
	// ModeCreate truncates or creates the archive for write ("w").
	ModeCreate = h5io.ModeCreate
	// ModeCreateExclusive creates the archive, failing if it exists ("w-"/"x").
	ModeCreateExclusive = h5io.ModeCreateExclusive
	// ModeOpenOrCreate opens if present, else creates ("a", the default).
	ModeOpenOrCreate = h5io.ModeOpenOrCreate
)
