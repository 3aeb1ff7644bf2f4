package hermes

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/kataras/hermes/pkg/design"
	"github.com/kataras/hermes/pkg/extractor"
	"github.com/kataras/hermes/pkg/formatter"

	"gopkg.in/yaml.v3"
)

// EmptySelectionMessage is reported instead of running an export without nodes.
const EmptySelectionMessage = "Please select at least one layer to export."

// errorPrefix precedes the description of any error that aborted an export.
const errorPrefix = "An error occurred during export: "

// ErrEmptySelection is returned by Export when the selection has no nodes.
var ErrEmptySelection = errors.New(EmptySelectionMessage)

// Logger receives progress messages. A nil Logger silences all output.
type Logger = extractor.Logger

// ExportOptions configures a single export.
type ExportOptions struct {
	IncludeScreenshot   bool             `json:"includeScreenshot" yaml:"includeScreenshot"`
	IncludeHierarchy    bool             `json:"includeHierarchy" yaml:"includeHierarchy"`
	IncludeMeasurements bool             `json:"includeMeasurements" yaml:"includeMeasurements"`
	IncludeStyles       bool             `json:"includeStyles" yaml:"includeStyles"`
	IncludeStructure    bool             `json:"includeStructure" yaml:"includeStructure"`
	OutputFormat        formatter.Format `json:"outputFormat" yaml:"outputFormat"`
}

// DefaultOptions enables every extractor and selects the tagged "claude" format.
func DefaultOptions() ExportOptions {
	return ExportOptions{
		IncludeScreenshot:   true,
		IncludeHierarchy:    true,
		IncludeMeasurements: true,
		IncludeStyles:       true,
		IncludeStructure:    true,
		OutputFormat:        formatter.Claude,
	}
}

// OptionsOverride is a partial ExportOptions. Nil fields keep the base value.
type OptionsOverride struct {
	IncludeScreenshot   *bool             `json:"includeScreenshot,omitempty" yaml:"includeScreenshot,omitempty"`
	IncludeHierarchy    *bool             `json:"includeHierarchy,omitempty" yaml:"includeHierarchy,omitempty"`
	IncludeMeasurements *bool             `json:"includeMeasurements,omitempty" yaml:"includeMeasurements,omitempty"`
	IncludeStyles       *bool             `json:"includeStyles,omitempty" yaml:"includeStyles,omitempty"`
	IncludeStructure    *bool             `json:"includeStructure,omitempty" yaml:"includeStructure,omitempty"`
	OutputFormat        *formatter.Format `json:"outputFormat,omitempty" yaml:"outputFormat,omitempty"`
}

// Merge returns o with every field set in override replacing the base value.
func (o ExportOptions) Merge(override OptionsOverride) ExportOptions {
	setBool(&o.IncludeScreenshot, override.IncludeScreenshot)
	setBool(&o.IncludeHierarchy, override.IncludeHierarchy)
	setBool(&o.IncludeMeasurements, override.IncludeMeasurements)
	setBool(&o.IncludeStyles, override.IncludeStyles)
	setBool(&o.IncludeStructure, override.IncludeStructure)
	if override.OutputFormat != nil {
		o.OutputFormat = *override.OutputFormat
	}
	return o
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// LoadOptionsOverride reads a YAML (or JSON) options file.
func LoadOptionsOverride(path string) (OptionsOverride, error) {
	var override OptionsOverride

	b, err := os.ReadFile(path)
	if err != nil {
		return override, fmt.Errorf("read options file: %w", err)
	}

	if err := yaml.Unmarshal(b, &override); err != nil {
		return override, fmt.Errorf("parse options file %q: %w", path, err)
	}

	return override, nil
}

// Result contains the output of an export.
type Result struct {
	Data   *extractor.DesignData
	Format formatter.Format
	Output string // serialized data
}

// Exporter runs exports against a host. The zero value exports without a renderer,
// so screenshots come out empty.
type Exporter struct {
	Host   design.Host
	Logger Logger // nil = no logging
}

// New returns an Exporter bound to host.
func New(host design.Host, logger Logger) *Exporter {
	return &Exporter{Host: host, Logger: logger}
}

func (e *Exporter) logInfo(f string, a ...any) {
	if e.Logger != nil {
		e.Logger.Infof(f, a...)
	}
}

func (e *Exporter) logError(f string, a ...any) {
	if e.Logger != nil {
		e.Logger.Errorf(f, a...)
	}
}

// Export extracts design data from selection and serializes it in the requested
// format. It returns ErrEmptySelection, without extracting anything, when selection
// is empty.
func (e *Exporter) Export(ctx context.Context, selection []*design.Node, opts ExportOptions) (*Result, error) {
	if len(selection) == 0 {
		return nil, ErrEmptySelection
	}

	e.logInfo("Extracting design data from %d node(s)...", len(selection))
	data, err := extractor.ExtractDesignData(ctx, selection, extractor.Options{
		IncludeScreenshot:   opts.IncludeScreenshot,
		IncludeHierarchy:    opts.IncludeHierarchy,
		IncludeMeasurements: opts.IncludeMeasurements,
		IncludeStyles:       opts.IncludeStyles,
		IncludeStructure:    opts.IncludeStructure,
		Host:                e.Host,
		Logger:              e.Logger,
	})
	if err != nil {
		return nil, err
	}

	e.logInfo("Formatting output as %s...", opts.OutputFormat)
	output, err := formatter.ToString(data, opts.OutputFormat)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", opts.OutputFormat, err)
	}

	return &Result{
		Data:   data,
		Format: opts.OutputFormat,
		Output: output,
	}, nil
}

// Request is a message sent by the front-end.
type Request struct {
	Type    string          `json:"type"`
	Options OptionsOverride `json:"options"`
}

// Response is the message sent back to the front-end.
type Response struct {
	Type    string `json:"type"`
	Data    string `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Message types.
const (
	RequestExport          = "export"
	ResponseExportComplete = "exportComplete"
	ResponseError          = "error"
)

// Handle answers a front-end request. Export requests merge their options over
// DefaultOptions and run against selection; every failure becomes an error response.
func (e *Exporter) Handle(ctx context.Context, req Request, selection []*design.Node) Response {
	if req.Type != RequestExport {
		return Response{Type: ResponseError, Message: fmt.Sprintf("unsupported request type %q", req.Type)}
	}

	if len(selection) == 0 {
		return Response{Type: ResponseError, Message: EmptySelectionMessage}
	}

	result, err := e.Export(ctx, selection, DefaultOptions().Merge(req.Options))
	if err != nil {
		e.logError("Export failed: %v", err)
		return Response{Type: ResponseError, Message: ErrorMessage(err)}
	}

	return Response{Type: ResponseExportComplete, Data: result.Output}
}

// ErrorMessage returns the user-facing description of an export error.
func ErrorMessage(err error) string {
	if errors.Is(err, ErrEmptySelection) {
		return EmptySelectionMessage
	}
	return errorPrefix + err.Error()
}
