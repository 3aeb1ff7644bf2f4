package extractor

import (
	"context"
	"errors"

	"github.com/kataras/hermes/pkg/design"
)

const screenshotScale = 2

var errNoHost = errors.New("no host available to render images")

// ScreenshotSettings are the export settings used for node screenshots: PNG at 2x.
var ScreenshotSettings = design.ExportSettings{
	Format: "PNG",
	Constraint: design.ExportConstraint{
		Type:  "SCALE",
		Value: screenshotScale,
	},
}

// ExtractScreenshot asks host to render node and returns the image as a base64 PNG
// data URI. Rendering failures never reach the caller: they are logged and an empty
// string is returned so that the export can carry on.
func ExtractScreenshot(ctx context.Context, node *design.Node, host design.Host, logger Logger) string {
	if host == nil {
		logError(logger, "extract screenshot for node %s: %v", node.ID, errNoHost)
		return ""
	}

	data, err := host.ExportImage(ctx, node, ScreenshotSettings)
	if err != nil {
		logError(logger, "extract screenshot for node %s: %v", node.ID, err)
		return ""
	}

	return "data:image/png;base64," + host.Base64Encode(data)
}
