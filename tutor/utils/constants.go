package utils

const (
	// Search Related
	ModifierQuery   = 'q'
	ModifierAllSets = '*'
	ModifierDebug   = 'd'

	SetSeparator = "|"

	// Display
	TruncatedNotice = "... and %d more"
)
