package formatter

import (
	"github.com/kataras/hermes/pkg/design"
	"github.com/kataras/hermes/pkg/extractor"
)

// sampleData is a two-node export: an auto-layout card with a screenshot and a text
// node without one.
func sampleData() *extractor.DesignData {
	return &extractor.DesignData{
		Timestamp: "2024-05-01T09:30:00.000Z",
		Nodes: []*extractor.NodeData{
			{
				ID:         "1:1",
				Name:       "Card",
				Type:       "FRAME",
				Screenshot: design.Ptr("data:image/png;base64,AAAA"),
				Measurements: &extractor.MeasurementsData{
					X: 0, Y: 0, Width: 320, Height: 200.5,
					Rotation: design.Ptr(0.0),
					Padding: &extractor.Box{
						Top:  design.Ptr(16.0),
						Left: design.Ptr(24.0),
					},
				},
				Styles: &extractor.StylesData{
					Fills: []extractor.FillStyle{
						{Type: "SOLID", Color: &extractor.Color{R: 1, G: 1, B: 1, A: 1, Hex: "#ffffff"}},
						{Type: "IMAGE", ImageURL: "[Image data not available in plugin context]"},
					},
				},
				Structure: &extractor.StructureData{
					LayoutMode:   design.Ptr("VERTICAL"),
					ItemSpacing:  design.Ptr(8.0),
					IsAutoLayout: true,
				},
			},
			{
				ID:         "1:2",
				Name:       "Title",
				Type:       "TEXT",
				Screenshot: design.Ptr(""),
				Hierarchy: &extractor.HierarchyData{
					Parent: design.Ptr("1:1"),
				},
				Measurements: &extractor.MeasurementsData{
					X: 24, Y: 16, Width: 272, Height: 24,
					Rotation: design.Ptr(-90.0),
				},
				Styles: &extractor.StylesData{
					Fills: []extractor.FillStyle{
						{Type: "SOLID", Color: &extractor.Color{R: 0.2, G: 0.2, B: 0.2, A: 1, Hex: "#333333"}},
					},
					Typography: &extractor.TypographyStyle{
						FontFamily: "Inter",
						FontSize:   18,
						FontWeight: 700,
						Color:      extractor.Color{R: 0.2, G: 0.2, B: 0.2, A: 1, Hex: "#333333"},
					},
				},
				Structure: &extractor.StructureData{},
			},
		},
	}
}
