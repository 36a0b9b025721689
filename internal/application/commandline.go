package application

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Mode is what the jsoncompare command has been asked to do.
type Mode int

const (
	// CompareFiles compares one expected file with one actual file.
	CompareFiles Mode = iota
	// CompareManifest compares every pair listed in a manifest file.
	CompareManifest
	// Serve runs the HTTP comparison service.
	Serve
)

// Options represents all options that can be set from the command line.
type Options struct {
	ConfigFile       string
	AllowMissingFile bool
	UseEnvironment   bool

	Mode         Mode
	ExpectedFile string
	ActualFile   string
	ManifestFile string
	RootDir      string
	Select       string
	MaxDiffs     int
	NoColor      bool
}

var (
	errNoMode           = errors.New("specify -expected and -actual, -manifest, or -serve")
	errTooManyModes     = errors.New("-expected/-actual, -manifest, and -serve cannot be combined")
	errIncompletePair   = errors.New("-expected and -actual must be used together")
	errNegativeMaxDiffs = errors.New("-max-diffs must not be negative")
	errRootWithoutList  = errors.New("-root can only be used with -manifest")
	errSelectWhenServe  = errors.New("-select cannot be used with -serve")
)

func errConfigFileNotFound(filename string) error {
	return fmt.Errorf("configuration file %q does not exist", filename)
}

// DescribeConfigSource returns a human-readable phrase describing whether the configuration comes from a
// file, from variables, both, or neither.
func (o Options) DescribeConfigSource() string {
	if o.ConfigFile == "" && !o.UseEnvironment {
		return "default configuration"
	}
	if o.ConfigFile == "" {
		return "configuration from environment variables"
	}
	desc := fmt.Sprintf("configuration file %s", o.ConfigFile)
	if o.UseEnvironment {
		desc += " plus environment variables"
	}
	return desc
}

// ReadOptions reads and validates the command-line options. The first element of args is the program name.
//
// Configuration is optional: -config loads a file, which must exist unless -allow-missing-file is also
// given, and -from-env applies environment variables on top of it. Exactly one of the three modes must
// be selected.
func ReadOptions(args []string, errorOutput io.Writer) (Options, error) {
	var o Options
	var serve bool

	fs := flag.NewFlagSet(programName(args), flag.ContinueOnError)
	fs.SetOutput(errorOutput)
	fs.StringVar(&o.ConfigFile, "config", "", "configuration file location")
	fs.BoolVar(&o.AllowMissingFile, "allow-missing-file", false, "suppress error if config file is not found")
	fs.BoolVar(&o.UseEnvironment, "from-env", false, "read configuration from environment variables")
	fs.StringVar(&o.ExpectedFile, "expected", "", "file containing the expected JSON document")
	fs.StringVar(&o.ActualFile, "actual", "", "file containing the actual JSON document")
	fs.StringVar(&o.ManifestFile, "manifest", "", "JSON file listing pairs of files to compare")
	fs.StringVar(&o.RootDir, "root", "", "directory that manifest paths are relative to (default: the manifest's directory)")
	fs.StringVar(&o.Select, "select", "", "compare only the part of each document matched by this GJSON path")
	fs.IntVar(&o.MaxDiffs, "max-diffs", 0, "stop after this many differences (0 means no limit)")
	fs.BoolVar(&o.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&serve, "serve", false, "run the HTTP comparison service")
	var flagArgs []string
	if len(args) > 1 {
		flagArgs = args[1:]
	}
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}

	if err := o.selectMode(serve); err != nil {
		return o, err
	}

	if o.ConfigFile != "" {
		_, err := os.Stat(o.ConfigFile)
		fileExists := err == nil || !os.IsNotExist(err)
		if !fileExists {
			if !o.AllowMissingFile {
				return o, errConfigFileNotFound(o.ConfigFile)
			}
			o.ConfigFile = ""
		}
	}

	return o, nil
}

func (o *Options) selectMode(serve bool) error {
	hasPair := o.ExpectedFile != "" || o.ActualFile != ""
	modes := 0
	for _, selected := range []bool{hasPair, o.ManifestFile != "", serve} {
		if selected {
			modes++
		}
	}
	switch {
	case modes == 0:
		return errNoMode
	case modes > 1:
		return errTooManyModes
	case o.MaxDiffs < 0:
		return errNegativeMaxDiffs
	case hasPair && (o.ExpectedFile == "" || o.ActualFile == ""):
		return errIncompletePair
	case o.RootDir != "" && o.ManifestFile == "":
		return errRootWithoutList
	case serve && o.Select != "":
		return errSelectWhenServe
	}
	switch {
	case serve:
		o.Mode = Serve
	case o.ManifestFile != "":
		o.Mode = CompareManifest
	default:
		o.Mode = CompareFiles
	}
	return nil
}

func programName(args []string) string {
	if len(args) == 0 {
		return "jsoncompare"
	}
	return args[0]
}

// DescribeVersion returns the same version string unless it is a prerelease build, in
// which case it is reformatted to change "+xxx" into "(build xxx)".
func DescribeVersion(version string) string {
	split := strings.Split(version, "+")
	if len(split) == 2 {
		return fmt.Sprintf("%s (build %s)", split[0], split[1])
	}
	return version
}
