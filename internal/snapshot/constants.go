package snapshot

// KeySnapshots is the storage slot holding the value history as a JSON array
const KeySnapshots = "snapshots"

// Log messages
const (
	LogMsgRecorded     = "Value snapshot recorded"
	LogMsgLoadCorrupt  = "Stored snapshot history is corrupt, starting empty"
	LogMsgJobNoSet     = "No default set configured, skipping value snapshot"
	LogMsgJobStarting  = "Starting value snapshot job"
	LogMsgJobCompleted = "Value snapshot job completed"
	LogMsgJobFailed    = "Value snapshot job failed"
)
