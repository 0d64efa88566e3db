package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithGlyphs sets the piece glyphs.
func (b *ConfigBuilder) WithGlyphs(glyphs Glyphs) *ConfigBuilder {
	b.cfg.Output.Glyphs = glyphs
	return b
}

// WithColour enables or disables ANSI cell shading.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.Colour = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithLegalMoves enables listing legal moves after each ply.
func (b *ConfigBuilder) WithLegalMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowLegalMoves = enabled
	return b
}

// WithArchive enables the game archive in dir.
func (b *ConfigBuilder) WithArchive(dir, gameID string) *ConfigBuilder {
	b.cfg.Archive.Enabled = true
	b.cfg.Archive.Dir = dir
	b.cfg.Archive.GameID = gameID
	return b
}

// WithResume continues an archived game.
func (b *ConfigBuilder) WithResume(dir, gameID string) *ConfigBuilder {
	b.cfg.Archive.Dir = dir
	b.cfg.Archive.ResumeID = gameID
	return b
}

// WithInput sets the move input stream.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.InputFile = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithWorkers sets the number of batch replay workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithFailFast stops batch replay at the first failing game.
func (b *ConfigBuilder) WithFailFast(enabled bool) *ConfigBuilder {
	b.cfg.FailFast = enabled
	return b
}
