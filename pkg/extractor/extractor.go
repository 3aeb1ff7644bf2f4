package extractor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kataras/hermes/pkg/design"
)

// timestampLayout matches the ISO-8601 form with millisecond precision, e.g.
// 2024-05-01T09:30:00.000Z.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

const maxParallelRenders = 5

// now is replaced in tests.
var now = time.Now

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

func logInfo(l Logger, f string, a ...any) {
	if l != nil {
		l.Infof(f, a...)
	}
}

func logError(l Logger, f string, a ...any) {
	if l != nil {
		l.Errorf(f, a...)
	}
}

// Options selects the extractors to run and provides the services they need.
type Options struct {
	IncludeScreenshot   bool
	IncludeHierarchy    bool
	IncludeMeasurements bool
	IncludeStyles       bool
	IncludeStructure    bool

	Host   design.Host // renders screenshots; must be safe for concurrent use
	Logger Logger      // nil = no logging
}

// ExtractDesignData runs the enabled extractors over every node of selection and
// returns one NodeData per node, in selection order.
//
// Screenshots are rendered concurrently (at most a few in flight) while the other
// extractors run synchronously. A failing screenshot degrades to an empty string; any
// other extractor error aborts the export and no partial result is returned.
func ExtractDesignData(ctx context.Context, selection []*design.Node, opts Options) (*DesignData, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	data := &DesignData{
		Timestamp: now().UTC().Format(timestampLayout),
		Nodes:     make([]*NodeData, 0, len(selection)),
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxParallelRenders)

	abort := func(err error) (*DesignData, error) {
		cancel()
		wg.Wait()
		return nil, err
	}

	for i, node := range selection {
		if node == nil {
			return abort(&MalformedNodeError{
				Attribute: fmt.Sprintf("selection[%d]", i),
				Err:       errNilNode,
			})
		}

		nd := &NodeData{
			ID:   node.ID,
			Name: node.Name,
			Type: node.Type,
		}
		data.Nodes = append(data.Nodes, nd)

		if opts.IncludeScreenshot {
			wg.Add(1)
			go func(nd *NodeData, node *design.Node) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()

				screenshot := ExtractScreenshot(ctx, node, opts.Host, opts.Logger)
				nd.Screenshot = &screenshot
			}(nd, node)
		}

		if err := extractNode(nd, node, opts); err != nil {
			return abort(err)
		}
	}

	wg.Wait()
	logInfo(opts.Logger, "Extracted design data from %d node(s)", len(data.Nodes))

	return data, nil
}

// extractNode runs the synchronous extractors. The screenshot field is owned by the
// render goroutine and is not touched here.
func extractNode(nd *NodeData, node *design.Node, opts Options) error {
	if opts.IncludeHierarchy {
		nd.Hierarchy = ExtractHierarchy(node)
	}

	if opts.IncludeMeasurements {
		measurements, err := ExtractMeasurements(node)
		if err != nil {
			return fmt.Errorf("extract measurements: %w", err)
		}
		nd.Measurements = measurements
	}

	if opts.IncludeStyles {
		styles, err := ExtractStyles(node)
		if err != nil {
			return fmt.Errorf("extract styles: %w", err)
		}
		nd.Styles = styles
	}

	if opts.IncludeStructure {
		nd.Structure = ExtractStructure(node)
	}

	return nil
}
