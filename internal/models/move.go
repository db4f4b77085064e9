package models

// MoveStatus describes the outcome of one attempted file relocation.
type MoveStatus string

const (
	// StatusMoved means the file was relocated on disk
	StatusMoved MoveStatus = "moved"

	// StatusSimulated means dry-run mode logged the move without touching disk
	StatusSimulated MoveStatus = "simulated"

	// StatusFailed means the rename was attempted and failed
	StatusFailed MoveStatus = "failed"
)

// MoveResult records the outcome of relocating one file into its
// category directory.
type MoveResult struct {
	// Record is the scanned file the move was attempted for
	Record FileRecord

	// Category is the destination category directory name
	Category string

	// Status is the move outcome
	Status MoveStatus

	// DestName is the final name inside the category directory, which
	// differs from Record.Name when a collision forced a rename
	DestName string

	// Renamed is true when a collision forced a timestamped name
	Renamed bool

	// Err holds the rename error when Status is StatusFailed
	Err error
}

// Summary aggregates the counters of a single organize invocation.
// Counters belong to the invocation that produced them; a fresh Summary
// is returned for every call.
type Summary struct {
	// Total is the number of attempted moves (Moved + Failed)
	Total int

	// Moved counts successful moves, including simulated ones in dry-run mode
	Moved int

	// Failed counts moves that errored
	Failed int

	// Warnings counts collision renames
	Warnings int
}
