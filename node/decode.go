package node

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"

	"github.com/sukkola/openapiv3-filter/internal/options"
	"github.com/sukkola/openapiv3-filter/oaserrors"
)

// Format identifies the serialization format a document was read from
// or should be written as.
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormatFromPath detects the source format from a file extension.
func DetectFormatFromPath(path string) Format {
	switch filepath.Ext(path) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// detectFormatFromContent sniffs JSON vs YAML from the leading
// non-whitespace byte: JSON documents open with '{' or '['.
func detectFormatFromContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return FormatJSON
	}
	return FormatYAML
}

// ParseBytes decodes data (JSON or YAML) into the document tree and
// reports which format was detected.
func ParseBytes(data []byte) (*Node, Format, error) {
	format := detectFormatFromContent(data)

	var raw yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, format, &oaserrors.ParseError{
			Message: "decoding document",
			Cause:   err,
		}
	}

	root := wrap(&raw)
	if root == nil {
		root = NewMap()
	}
	return root, format, nil
}

// Option configures a Read call.
type Option func(*readConfig) error

type readConfig struct {
	filePath *string
	reader   io.Reader
	bytes    []byte
	logger   Logger
}

// WithFilePath reads the document from the named file.
func WithFilePath(path string) Option {
	return func(c *readConfig) error {
		c.filePath = &path
		return nil
	}
}

// WithReader reads the document from an io.Reader.
func WithReader(r io.Reader) Option {
	return func(c *readConfig) error {
		c.reader = r
		return nil
	}
}

// WithBytes reads the document from an in-memory byte slice.
func WithBytes(b []byte) Option {
	return func(c *readConfig) error {
		c.bytes = b
		return nil
	}
}

// WithLogger attaches a Logger for diagnostic messages emitted while
// detecting format and decoding. Defaults to NopLogger.
func WithLogger(l Logger) Option {
	return func(c *readConfig) error {
		c.logger = l
		return nil
	}
}

// Read decodes a document from exactly one of the input sources
// configured via options, returning the tree and the detected format.
// The format is sniffed from content; for a file source whose content
// is inconclusive the file extension is consulted, and YAML is assumed
// when neither decides.
func Read(opts ...Option) (*Node, Format, error) {
	cfg := &readConfig{logger: NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, FormatUnknown, &oaserrors.ConfigError{Message: err.Error()}
		}
	}

	if err := options.ValidateSingleInputSource(
		"no input source specified: use WithFilePath, WithReader, or WithBytes",
		"multiple input sources specified: use only one of WithFilePath, WithReader, or WithBytes",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, FormatUnknown, &oaserrors.ConfigError{Message: err.Error()}
	}

	var data []byte
	var pathHint string
	switch {
	case cfg.filePath != nil:
		pathHint = *cfg.filePath
		cfg.logger.Debug("reading document from file", "path", pathHint)
		b, err := os.ReadFile(pathHint)
		if err != nil {
			return nil, FormatUnknown, &oaserrors.ParseError{Path: pathHint, Message: "reading file", Cause: err}
		}
		data = b
	case cfg.reader != nil:
		b, err := io.ReadAll(cfg.reader)
		if err != nil {
			return nil, FormatUnknown, &oaserrors.ParseError{Message: "reading input", Cause: err}
		}
		data = b
	case cfg.bytes != nil:
		data = cfg.bytes
	}

	root, format, err := ParseBytes(data)
	if err != nil {
		if pe, ok := err.(*oaserrors.ParseError); ok {
			pe.Path = pathHint
		}
		return nil, format, err
	}

	if format == FormatUnknown && pathHint != "" {
		if byExt := DetectFormatFromPath(pathHint); byExt != FormatUnknown {
			format = byExt
		}
	}
	if format == FormatUnknown {
		cfg.logger.Warn("could not determine document format; defaulting to YAML", "path", pathHint)
		format = FormatYAML
	}

	return root, format, nil
}
