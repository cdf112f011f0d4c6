package config

const (
	// MaxDirectoryNameLength is the maximum length for directory names.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (names should be short and descriptive).
	MaxDirectoryNameLength = 255

	// MaxFileNameLength is the maximum length for file base names.
	// Same as directory names for consistency.
	MaxFileNameLength = 255

	// MaxUploadBytes caps multipart upload payloads.
	MaxUploadBytes = 50 << 20

	// InsightTemperature is the fixed low sampling temperature used for
	// directory summaries to keep responses focused.
	InsightTemperature = 0.1
)
