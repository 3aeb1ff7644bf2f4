package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/kataras/hermes"
	"github.com/kataras/hermes/pkg/design"
	"github.com/kataras/hermes/pkg/figma"
	"github.com/kataras/hermes/pkg/formatter"
	"github.com/kataras/hermes/pkg/imager"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	documentFile  string
	figmaURL      string
	accessToken   string
	nodeIDs       string
	configFile    string
	outputFormat  string
	outputFile    string
	screenshotDir string

	includeScreenshot   bool
	includeHierarchy    bool
	includeMeasurements bool
	includeStyles       bool
	includeStructure    bool
)

var summaryStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("42")).
	Padding(0, 1)

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hermes",
		Short: "Export design metadata for documentation and language-model pipelines",
		Long: `Extract geometry, styles, hierarchy, layout structure and screenshots from design nodes
and serialize them as JSON, markdown or tagged markup.

Nodes come either from a local design document (--file) or from a Figma file (--url).`,
		SilenceUsage: true,
		RunE:         run,
	}

	defaults := hermes.DefaultOptions()
	flags := rootCmd.Flags()
	flags.StringVarP(&documentFile, "file", "f", "", "Design document to export (YAML or JSON)")
	flags.StringVarP(&figmaURL, "url", "u", "", "Figma file URL")
	flags.StringVarP(&accessToken, "token", "t", os.Getenv("FIGMA_TOKEN"), "Figma Personal Access Token (default $FIGMA_TOKEN)")
	flags.StringVarP(&nodeIDs, "node-ids", "n", "", "Comma-separated node IDs to export (default: nodes in the URL or the document selection)")
	flags.StringVarP(&configFile, "config", "c", "", "YAML file with export options")
	flags.StringVar(&outputFormat, "format", string(defaults.OutputFormat), "Output format: json, markdown, claude")
	flags.StringVarP(&outputFile, "output", "o", "", "Output file (default stdout)")
	flags.StringVar(&screenshotDir, "screenshot-dir", "", "Also write screenshots as PNG files to this directory")
	flags.BoolVar(&includeScreenshot, "screenshot", defaults.IncludeScreenshot, "Include a rendered screenshot of each node")
	flags.BoolVar(&includeHierarchy, "hierarchy", defaults.IncludeHierarchy, "Include parent, children and component properties")
	flags.BoolVar(&includeMeasurements, "measurements", defaults.IncludeMeasurements, "Include position, size, padding and inferred margin")
	flags.BoolVar(&includeStyles, "styles", defaults.IncludeStyles, "Include fills, strokes, effects and typography")
	flags.BoolVar(&includeStructure, "structure", defaults.IncludeStructure, "Include auto-layout and constraints")

	rootCmd.MarkFlagsMutuallyExclusive("file", "url")
	rootCmd.MarkFlagsOneRequired("file", "url")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hermes version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger := &cliLogger{}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	host, selection, err := loadSelection(ctx, logger)
	if err != nil {
		return err
	}

	exporter := hermes.New(host, logger)
	result, err := exporter.Export(ctx, selection, opts)
	if err != nil {
		return errors.New(hermes.ErrorMessage(err))
	}

	if screenshotDir != "" && opts.IncludeScreenshot {
		saved, err := imager.SaveScreenshots(result.Data, screenshotDir)
		if err != nil {
			return err
		}
		for _, saveErr := range saved.Errors {
			logger.Warnf("%v", saveErr)
		}
		logger.Infof("Wrote %d screenshot(s) to %s", len(saved.Screenshots), screenshotDir)
	}

	if outputFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), result.Output)
		return nil
	}

	if err := os.WriteFile(outputFile, []byte(result.Output), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), summaryStyle.Render(fmt.Sprintf(
		"Exported %d node(s) as %s\n%s (%d bytes)",
		len(result.Data.Nodes), result.Format, outputFile, len(result.Output))))

	return nil
}

// resolveOptions layers the config file and explicitly set flags over the defaults.
func resolveOptions(cmd *cobra.Command) (hermes.ExportOptions, error) {
	opts := hermes.DefaultOptions()

	if configFile != "" {
		override, err := hermes.LoadOptionsOverride(configFile)
		if err != nil {
			return opts, err
		}
		opts = opts.Merge(override)
	}

	var override hermes.OptionsOverride
	flags := cmd.Flags()
	if flags.Changed("screenshot") {
		override.IncludeScreenshot = &includeScreenshot
	}
	if flags.Changed("hierarchy") {
		override.IncludeHierarchy = &includeHierarchy
	}
	if flags.Changed("measurements") {
		override.IncludeMeasurements = &includeMeasurements
	}
	if flags.Changed("styles") {
		override.IncludeStyles = &includeStyles
	}
	if flags.Changed("structure") {
		override.IncludeStructure = &includeStructure
	}
	if flags.Changed("format") {
		format := formatter.Format(outputFormat)
		override.OutputFormat = &format
	}

	return opts.Merge(override), nil
}

// loadSelection builds the host and the selected nodes from either the local document
// or the Figma file.
func loadSelection(ctx context.Context, logger *cliLogger) (design.Host, []*design.Node, error) {
	if documentFile != "" {
		logger.Infof("Loading design document %s...", documentFile)
		doc, err := design.LoadDocumentFile(documentFile)
		if err != nil {
			return nil, nil, err
		}
		if nodeIDs != "" {
			doc.Selection = figma.ParseNodeIDs(nodeIDs)
		}

		selection, err := doc.ResolveSelection()
		if err != nil {
			return nil, nil, err
		}

		// Local documents cannot be rendered.
		return nil, selection, nil
	}

	if accessToken == "" {
		return nil, nil, fmt.Errorf("a Figma access token is required with --url (use --token or $FIGMA_TOKEN)")
	}

	fileKey, err := figma.ExtractFileKey(figmaURL)
	if err != nil {
		return nil, nil, fmt.Errorf("extract file key: %w", err)
	}
	logger.Infof("File key: %s", fileKey)

	var ids []string
	if nodeIDs != "" {
		ids = figma.ParseNodeIDs(nodeIDs)
	} else {
		ids, err = figma.ExtractNodeIDs(figmaURL)
		if err != nil {
			return nil, nil, fmt.Errorf("extract node IDs from URL: %w", err)
		}
	}
	if len(ids) == 0 {
		return nil, nil, hermes.ErrEmptySelection
	}

	client := figma.NewClient(accessToken)

	logger.Infof("Fetching %d node(s) from Figma...", len(ids))
	nodesResp, err := client.GetFileNodes(ctx, fileKey, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch nodes: %w", err)
	}

	selection, err := figma.Selection(nodesResp, ids)
	if err != nil {
		return nil, nil, err
	}

	return imager.NewRenderer(client, fileKey), selection, nil
}

// cliLogger implements hermes.Logger with colored output on stderr.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}
