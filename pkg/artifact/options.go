package artifact

import "io/fs"

// Filenames maps each artifact to its document name inside the source
// directory. Zero-value entries fall back to the conventional names the
// training pipeline exports.
type Filenames struct {
	Stress     string
	Depression string
	Burnout    string
	Wellness   string
	Scaler     string
}

// DefaultFilenames returns the conventional artifact document names.
func DefaultFilenames() Filenames {
	return Filenames{
		Stress:     "stress_model.json",
		Depression: "depression_model.json",
		Burnout:    "burnout_model.json",
		Wellness:   "wellness_model.json",
		Scaler:     "scaler.json",
	}
}

func (f Filenames) withDefaults() Filenames {
	defaults := DefaultFilenames()
	if f.Stress == "" {
		f.Stress = defaults.Stress
	}
	if f.Depression == "" {
		f.Depression = defaults.Depression
	}
	if f.Burnout == "" {
		f.Burnout = defaults.Burnout
	}
	if f.Wellness == "" {
		f.Wellness = defaults.Wellness
	}
	if f.Scaler == "" {
		f.Scaler = defaults.Scaler
	}
	return f
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources. Nil disables them.
	FileSystem fs.FS

	// Filenames overrides the artifact document names.
	Filenames Filenames
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for SourceKindFS sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithFilenames overrides the artifact document names.
func WithFilenames(names Filenames) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Filenames = names
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration with filename defaults filled in.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	cfg.Filenames = cfg.Filenames.withDefaults()
	return cfg
}

// Construction helpers live in the top-level wellness package to prevent import cycles.
