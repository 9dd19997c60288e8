package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	oasfilter "github.com/sukkola/openapiv3-filter"
	"github.com/sukkola/openapiv3-filter/filter"
	"github.com/sukkola/openapiv3-filter/internal/cliutil"
	"github.com/sukkola/openapiv3-filter/node"
	"github.com/sukkola/openapiv3-filter/oaserrors"
	"github.com/sukkola/openapiv3-filter/selector"
)

// exit codes, per the CLI's "usage error vs I/O error" distinction.
const (
	exitOK     = 0
	exitConfig = 1
	exitIO     = 2
)

// stringList collects repeated occurrences of a flag, e.g. -p a -p b.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type cliFlags struct {
	apiDocument string
	output      string
	format      string
	paths       stringList
	methods     stringList
	tags        stringList
	security    stringList
	showVersion bool
}

func setupFlags() (*flag.FlagSet, *cliFlags) {
	fs := flag.NewFlagSet("openapiv3-filter", flag.ContinueOnError)
	flags := &cliFlags{}

	fs.StringVar(&flags.apiDocument, "a", "-", "input OpenAPI document path, or - for stdin")
	fs.StringVar(&flags.apiDocument, "api-document", "-", "input OpenAPI document path, or - for stdin")
	fs.StringVar(&flags.output, "o", "-", "output path, or - for stdout")
	fs.StringVar(&flags.output, "output", "-", "output path, or - for stdout")
	fs.StringVar(&flags.format, "f", "", "output format: json or yaml (default: same as input)")
	fs.StringVar(&flags.format, "format", "", "output format: json or yaml (default: same as input)")
	fs.Var(&flags.paths, "p", "path glob to keep (repeatable)")
	fs.Var(&flags.paths, "path", "path glob to keep (repeatable)")
	fs.Var(&flags.methods, "m", "HTTP method to keep (repeatable)")
	fs.Var(&flags.methods, "method", "HTTP method to keep (repeatable)")
	fs.Var(&flags.tags, "tag", "tag to keep (repeatable)")
	fs.Var(&flags.security, "security", "security scheme name to keep (repeatable)")
	fs.BoolVar(&flags.showVersion, "V", false, "print version and exit")
	fs.BoolVar(&flags.showVersion, "version", false, "print version and exit")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: openapiv3-filter [flags]\n\n")
		_, _ = fmt.Fprintf(output, "Filter an OpenAPI v3 document down to a subset of its operations,\n")
		_, _ = fmt.Fprintf(output, "along with the components and tags they reference.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  openapiv3-filter -a openapi.yaml -p '/pets/*' -m get -o pets.yaml\n")
		_, _ = fmt.Fprintf(output, "  openapiv3-filter -a openapi.json --tag admin --security oauth2\n")
		_, _ = fmt.Fprintf(output, "  cat openapi.yaml | openapiv3-filter -f json > filtered.json\n")
		_, _ = fmt.Fprintf(output, "\nExit Status:\n")
		_, _ = fmt.Fprintf(output, "  0    filtered document written successfully\n")
		_, _ = fmt.Fprintf(output, "  1    malformed filter specification or invalid flags\n")
		_, _ = fmt.Fprintf(output, "  2    input could not be read or parsed, or output could not be written\n")
	}

	return fs, flags
}

func main() {
	fs, flags := setupFlags()

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(exitOK)
		}
		os.Exit(exitConfig)
	}

	if flags.showVersion {
		cliutil.Writef(os.Stdout, "openapiv3-filter %s\n", oasfilter.Version())
		os.Exit(exitOK)
	}

	if fs.NArg() != 0 {
		fs.Usage()
		os.Exit(exitConfig)
	}

	code := run(flags)
	os.Exit(code)
}

func run(flags *cliFlags) int {
	spec := selector.FilterSpec{
		PathPatterns: flags.paths,
		Methods:      flags.methods,
		Tags:         flags.tags,
		Security:     flags.security,
	}
	if err := spec.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "openapiv3-filter: %v\n", err)
		return exitConfig
	}

	outputFormat, err := parseFormatFlag(flags.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "openapiv3-filter: %v\n", err)
		return exitConfig
	}

	root, detectedFormat, err := readInput(flags.apiDocument)
	if err != nil {
		fmt.Fprintf(os.Stderr, "openapiv3-filter: %v\n", err)
		return exitIO
	}

	filtered, err := filter.Filter(root, spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "openapiv3-filter: %v\n", err)
		return exitConfig
	}

	if outputFormat == node.FormatUnknown {
		outputFormat = detectedFormat
	}

	data, err := node.Encode(filtered, outputFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "openapiv3-filter: encoding output: %v\n", err)
		return exitIO
	}

	if err := writeOutput(flags.output, data); err != nil {
		fmt.Fprintf(os.Stderr, "openapiv3-filter: %v\n", err)
		return exitIO
	}

	return exitOK
}

func parseFormatFlag(value string) (node.Format, error) {
	switch strings.ToLower(value) {
	case "":
		return node.FormatUnknown, nil
	case "json":
		return node.FormatJSON, nil
	case "yaml", "yml":
		return node.FormatYAML, nil
	default:
		return node.FormatUnknown, &oaserrors.ConfigError{Option: "format", Value: value, Message: "must be json or yaml"}
	}
}

func readInput(path string) (*node.Node, node.Format, error) {
	if path == "-" || path == "" {
		return node.Read(node.WithReader(os.Stdin))
	}
	return node.Read(node.WithFilePath(path))
}

func writeOutput(path string, data []byte) error {
	if path == "-" || path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
