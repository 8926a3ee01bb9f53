package runner

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// Options holds the parsed CLI surface for a dedup run.
type Options struct {
	Input     string
	Output    string
	DryRun    bool
	Report    bool
	NoFuzzy   bool
	RulesPath string
	Verbose   bool
	Silent    bool
}

// ParseFlags parses the CLI flags grouped into input/output sets,
// and applies the log-level side effects (--silent/--verbose) before
// returning.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Deduplicate email-identity nodes in a correspondence graph snapshot.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Input, "input", "i", "public/email_network.json", "input graph snapshot path (also accepted as the first positional argument)"),
		flagSet.StringVar(&opts.RulesPath, "rules", "", "YAML file of additional domain_fixes/email_fixes entries to overlay on the fixed tables"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output path (default: overwrite input, keeping a .bak copy)"),
		flagSet.BoolVar(&opts.DryRun, "dry-run", false, "compute and report merge stats, do not write output"),
		flagSet.BoolVar(&opts.Report, "report", false, "print up to 100 largest merge groups with their members"),
		flagSet.BoolVar(&opts.NoFuzzy, "no-fuzzy", false, "disable Layer 4 (fuzzy intra-domain clustering) only"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if len(os.Args) > 1 && os.Args[1] != "" && os.Args[1][0] != '-' {
		opts.Input = os.Args[1]
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	return opts
}
