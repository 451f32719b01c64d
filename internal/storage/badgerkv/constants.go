package badgerkv

import "time"

// Garbage collection defaults
const (
	DefaultGCInterval     = 5 * time.Minute
	DefaultGCDiscardRatio = 0.5
)

// Error messages
const (
	ErrMsgDirRequired  = "database directory is required"
	ErrMsgCreateDir    = "failed to create database directory"
	ErrMsgOpenFailed   = "failed to open badger database"
	ErrMsgGetFailed    = "failed to read key"
	ErrMsgSetFailed    = "failed to write key"
	ErrMsgDeleteFailed = "failed to delete key"
	ErrMsgClosed       = "badger database is closed"
)

// Log messages
const (
	LogMsgGCFailed = "Badger value log GC failed"
)
