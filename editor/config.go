package editor

import "github.com/iw2rmb/tide/storage"

const (
	DefaultFilename = "noname.txt"
	DefaultTitle    = "tide"

	defaultWidth  = 80
	defaultHeight = 24
)

// Config configures the editor Model.
type Config struct {
	// File to edit. Empty means DefaultFilename.
	Filename string
	// Load/save backend. Nil means storage.FileStore{}.
	Store storage.Store

	// Header text before the version. Empty means DefaultTitle.
	Title   string
	Version string

	// Terminal size used until the first tea.WindowSizeMsg arrives.
	// Zero means 80x24.
	Width, Height int

	// Rendering options. The zero Style renders plain text.
	Style Style
}

func (c Config) withDefaults() Config {
	if c.Filename == "" {
		c.Filename = DefaultFilename
	}
	if c.Store == nil {
		c.Store = storage.FileStore{}
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	return c
}
