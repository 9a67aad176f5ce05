package cli

import "flag"

// Flags holds all command line flags
type Flags struct {
	Version   *bool
	Config    *string
	Precision *int
	Json      *bool
	Verbose   *bool
}

// GlobalFlags holds the parsed command line flags
var GlobalFlags *Flags

// precisionUnset marks --precision as "not given"; the config value applies.
const precisionUnset = -1000

// InitFlags initializes all command line flags
func InitFlags() *Flags {
	return &Flags{
		Version:   flag.Bool("version", false, "Show version information"),
		Config:    flag.String("config", "", "Path to config file (defaults to searching gocalc.yaml)"),
		Precision: flag.Int("precision", precisionUnset, "Decimal places for results, -1 for shortest representation"),
		Json:      flag.Bool("json", false, "Output results in JSON format"),
		Verbose:   flag.Bool("verbose", false, "Enable debug logging to stderr"),
	}
}

// ParseFlags parses command line flags with custom usage
func ParseFlags(usage func()) {
	if GlobalFlags == nil {
		GlobalFlags = InitFlags()
	}
	flag.Usage = usage
	flag.Parse()
}

// PrecisionSet reports whether --precision was given on the command line.
func (f *Flags) PrecisionSet() bool {
	return *f.Precision != precisionUnset
}
