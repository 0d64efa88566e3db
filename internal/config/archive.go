package config

// ArchiveConfig holds settings for the on-disk game archive.
type ArchiveConfig struct {
	// Enabled saves every game to the archive
	Enabled bool

	// Dir is the database directory
	Dir string

	// GameID names the archived game; empty means one is generated
	GameID string

	// ResumeID loads an archived game and continues it
	ResumeID string
}

// NewArchiveConfig creates an ArchiveConfig with default values.
func NewArchiveConfig() *ArchiveConfig {
	return &ArchiveConfig{}
}

// Active reports whether the archive must be opened.
func (a *ArchiveConfig) Active() bool {
	return a.Enabled || a.ResumeID != ""
}
