package prefs

// Storage slots for the collector preferences
const (
	KeyLanguage = "prefs:language"
	KeyVariant  = "prefs:variant"
)

// Log messages
const (
	LogMsgLanguageSet = "Display language preference updated"
	LogMsgVariantSet  = "Catalog variant preference updated"
	LogMsgCorruptSlot = "Stored preference is invalid, using default"
)
