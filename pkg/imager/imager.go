package imager

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kataras/hermes/pkg/design"
	"github.com/kataras/hermes/pkg/extractor"
	"github.com/kataras/hermes/pkg/figma"
)

const dataURIPrefix = "data:image/png;base64,"

// Renderer is a design.Host that renders nodes through the Figma images API and
// downloads the result in memory. It is safe for concurrent use.
type Renderer struct {
	client  *figma.Client
	fileKey string
}

var _ design.Host = (*Renderer)(nil)

// NewRenderer returns a Renderer for the nodes of the given file.
func NewRenderer(client *figma.Client, fileKey string) *Renderer {
	return &Renderer{client: client, fileKey: fileKey}
}

// ExportImage renders node and returns the image bytes. Only SCALE constraints are
// supported by the images API.
func (r *Renderer) ExportImage(ctx context.Context, node *design.Node, settings design.ExportSettings) ([]byte, error) {
	scale := 1.0
	switch settings.Constraint.Type {
	case "", "SCALE":
		if settings.Constraint.Value > 0 {
			scale = settings.Constraint.Value
		}
	default:
		return nil, fmt.Errorf("unsupported export constraint %q", settings.Constraint.Type)
	}

	format := strings.ToLower(settings.Format)
	if format == "" {
		format = "png"
	}

	imgResp, err := r.client.GetImages(ctx, r.fileKey, []string{node.ID}, format, scale)
	if err != nil {
		return nil, fmt.Errorf("failed to get images from Figma API: %w", err)
	}

	imageURL := imgResp.Images[node.ID]
	if imageURL == "" {
		return nil, fmt.Errorf("no image URL returned for node %s", node.ID)
	}

	return r.client.Download(ctx, imageURL)
}

// Base64Encode encodes image bytes for a data URI.
func (r *Renderer) Base64Encode(data []byte) string {
	return design.EncodeBase64(data)
}

// SavedScreenshot represents a screenshot written to disk.
type SavedScreenshot struct {
	NodeID   string
	NodeName string
	FileName string
}

// SaveResult holds the results of SaveScreenshots.
type SaveResult struct {
	Screenshots []SavedScreenshot
	Errors      []error // non-fatal per-node failures
}

// SaveScreenshots decodes the screenshot of every node in data and writes it to dir as
// a PNG named after the node. Nodes without a screenshot are skipped.
func SaveScreenshots(data *extractor.DesignData, dir string) (*SaveResult, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}

	result := &SaveResult{}
	usedNames := make(map[string]int) // track filename collisions

	for _, node := range data.Nodes {
		if node.Screenshot == nil || *node.Screenshot == "" {
			continue
		}

		encoded, ok := strings.CutPrefix(*node.Screenshot, dataURIPrefix)
		if !ok {
			result.Errors = append(result.Errors, fmt.Errorf("screenshot of %s is not a PNG data URI", node.Name))
			continue
		}

		b, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to decode screenshot of %s: %w", node.Name, err))
			continue
		}

		fileName := buildFileName(node.Name, node.ID, "png", extractor.ScreenshotSettings.Constraint.Value)

		// Deduplicate filenames.
		if count, exists := usedNames[fileName]; exists {
			ext := filepath.Ext(fileName)
			base := strings.TrimSuffix(fileName, ext)
			usedNames[fileName] = count + 1
			fileName = fmt.Sprintf("%s-%d%s", base, count+1, ext)
		} else {
			usedNames[fileName] = 1
		}

		destPath := filepath.Join(dir, fileName)
		if err := os.WriteFile(destPath, b, 0644); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to write file %q: %w", destPath, err))
			continue
		}

		result.Screenshots = append(result.Screenshots, SavedScreenshot{
			NodeID:   node.ID,
			NodeName: node.Name,
			FileName: fileName,
		})
	}

	return result, nil
}

// buildFileName creates a sanitized filename from a node name.
// Uses kebab-case, adds @2x/@3x suffix for raster scales > 1,
// falls back to sanitized node ID if name is empty.
func buildFileName(nodeName, nodeID, format string, scale float64) string {
	name := nodeName
	if name == "" {
		name = nodeID
	}

	name = toKebabCase(name)
	if name == "" {
		name = "asset"
	}

	// Add scale suffix for raster formats with scale > 1.
	scaleSuffix := ""
	if scale > 1 && format != "svg" && format != "pdf" {
		scaleSuffix = fmt.Sprintf("@%gx", scale)
	}

	return fmt.Sprintf("%s%s.%s", name, scaleSuffix, format)
}

// toKebabCase converts a string to kebab-case format (lowercase with hyphens).
func toKebabCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}

	return result.String()
}
