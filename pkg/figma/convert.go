package figma

import (
	"fmt"
	"math"

	"github.com/kataras/hermes/pkg/design"
)

// fontStyleNames maps a numeric font weight to the style name the design tool shows.
var fontStyleNames = map[float64]string{
	100: "Thin",
	200: "Extra Light",
	300: "Light",
	400: "Regular",
	500: "Medium",
	600: "Semi Bold",
	700: "Bold",
	800: "Extra Bold",
	900: "Black",
}

// Selection converts the requested nodes of resp into linked design trees, returned
// in nodeIDs order. Parents of the requested nodes are not part of the response, so
// the returned roots have no parent.
func Selection(resp *NodesResponse, nodeIDs []string) ([]*design.Node, error) {
	selection := make([]*design.Node, 0, len(nodeIDs))

	for _, id := range nodeIDs {
		nd, ok := resp.Nodes[id]
		if !ok || nd == nil {
			return nil, fmt.Errorf("node %s not found in file %q", id, resp.Name)
		}
		selection = append(selection, ToDesign(&nd.Document, nil))
	}

	design.Link(selection)
	return selection, nil
}

// ToDesign converts a REST node and its subtree into a design.Node. Positions are made
// relative to parent's bounding box, the way the design tool reports them.
func ToDesign(node *Node, parent *Node) *design.Node {
	dn := &design.Node{
		ID:      node.ID,
		Name:    node.Name,
		Type:    node.Type,
		Visible: node.Visible == nil || *node.Visible,
		Locked:  node.Locked,

		Rotation:             degrees(node.Rotation),
		ConstrainProportions: node.PreserveRatio,

		LayoutGrow:    node.LayoutGrow,
		PaddingLeft:   node.PaddingLeft,
		PaddingRight:  node.PaddingRight,
		PaddingTop:    node.PaddingTop,
		PaddingBottom: node.PaddingBottom,
		ItemSpacing:   node.ItemSpacing,

		StrokeWeight: node.StrokeWeight,
		StrokeAlign:  optionalString(node.StrokeAlign),
		DashPattern:  node.StrokeDashes,

		Characters: node.Characters,
	}

	if box := node.AbsoluteBoundingBox; box != nil {
		dn.X, dn.Y = box.X, box.Y
		dn.Width, dn.Height = box.Width, box.Height
		if parent != nil && parent.AbsoluteBoundingBox != nil {
			dn.X -= parent.AbsoluteBoundingBox.X
			dn.Y -= parent.AbsoluteBoundingBox.Y
		}
	}

	if node.Constraints != nil {
		dn.Constraints = &design.Constraints{
			Horizontal: node.Constraints.Horizontal,
			Vertical:   node.Constraints.Vertical,
		}
	}

	if node.LayoutMode != "" {
		dn.LayoutMode = optionalString(node.LayoutMode)
		dn.LayoutAlign = optionalString(node.LayoutAlign)
		dn.PrimaryAxisSizingMode = optionalString(node.PrimaryAxisSizingMode)
		dn.CounterAxisSizingMode = optionalString(node.CounterAxisSizingMode)
		dn.PrimaryAxisAlignItems = optionalString(node.PrimaryAxisAlignItems)
		dn.CounterAxisAlignItems = optionalString(node.CounterAxisAlignItems)
	}

	dn.Fills = convertPaints(node.Fills)
	dn.Strokes = convertPaints(node.Strokes)
	dn.Effects = convertEffects(node.Effects)

	if s := node.Style; s != nil {
		dn.FontName = &design.FontName{Family: s.FontFamily, Style: fontStyleName(s.FontWeight, s.Italic)}
		dn.FontSize = design.Ptr(s.FontSize)
		dn.LetterSpacing = s.LetterSpacing
		dn.LineHeight = lineHeight(s)
		dn.TextAlignHorizontal = optionalString(s.TextAlignHorizontal)
		dn.TextCase = optionalString(s.TextCase)
		dn.TextDecoration = optionalString(s.TextDecoration)
	}

	if node.ComponentProperties != nil {
		dn.ComponentProperties = make(map[string]any, len(node.ComponentProperties))
		for name, prop := range node.ComponentProperties {
			dn.ComponentProperties[name] = map[string]any{"type": prop.Type, "value": prop.Value}
			if prop.Type == "VARIANT" {
				if dn.VariantProperties == nil {
					dn.VariantProperties = make(map[string]any)
				}
				dn.VariantProperties[name] = prop.Value
			}
		}
	}

	if isContainer(node.Type) || node.Children != nil {
		dn.Children = make([]*design.Node, 0, len(node.Children))
		for i := range node.Children {
			dn.Children = append(dn.Children, ToDesign(&node.Children[i], node))
		}
	}

	return dn
}

// isContainer reports whether nodes of the given type carry a children collection,
// even when the API omits an empty one.
func isContainer(nodeType string) bool {
	switch nodeType {
	case "DOCUMENT", "CANVAS", "FRAME", "GROUP", "SECTION", "COMPONENT", "COMPONENT_SET", "INSTANCE", "BOOLEAN_OPERATION":
		return true
	default:
		return false
	}
}

func convertPaints(paints []Paint) []design.Paint {
	if paints == nil {
		return nil
	}

	out := make([]design.Paint, 0, len(paints))
	for _, p := range paints {
		dp := design.Paint{
			Type:      p.Type,
			Visible:   p.Visible,
			Opacity:   p.Opacity,
			BlendMode: p.BlendMode,
			ScaleMode: p.ScaleMode,
		}

		// Paint colors are plain RGB; their alpha lives in the paint opacity.
		if p.Color != nil {
			dp.Color = &design.RGB{R: p.Color.R, G: p.Color.G, B: p.Color.B}
		}

		if p.GradientStops != nil {
			dp.GradientStops = make([]design.GradientStop, 0, len(p.GradientStops))
			for _, stop := range p.GradientStops {
				dp.GradientStops = append(dp.GradientStops, design.GradientStop{
					Position: stop.Position,
					Color:    rgba(stop.Color),
				})
			}
		}

		out = append(out, dp)
	}

	return out
}

func convertEffects(effects []Effect) []design.Effect {
	if effects == nil {
		return nil
	}

	out := make([]design.Effect, 0, len(effects))
	for _, e := range effects {
		de := design.Effect{
			Type:    e.Type,
			Visible: e.Visible,
			Radius:  e.Radius,
			Spread:  e.Spread,
		}

		if e.Color != nil {
			c := rgba(*e.Color)
			de.Color = &c
		}

		if e.Offset != nil {
			de.Offset = &design.Vector{X: e.Offset.X, Y: e.Offset.Y}
		}

		out = append(out, de)
	}

	return out
}

// degrees converts the REST rotation, given in radians, to the degrees the design
// model uses.
func degrees(radians *float64) *float64 {
	if radians == nil {
		return nil
	}
	return design.Ptr(*radians * 180 / math.Pi)
}

func rgba(c Color) design.RGB {
	return design.RGB{R: c.R, G: c.G, B: c.B, A: design.Ptr(c.A)}
}

// fontStyleName rebuilds a style name such as "Semi Bold Italic" from the numeric weight.
func fontStyleName(weight float64, italic bool) string {
	name, ok := fontStyleNames[weight]
	if !ok {
		name = "Regular"
	}

	if italic {
		if name == "Regular" {
			return "Italic"
		}
		return name + " Italic"
	}

	return name
}

// lineHeight returns the line height in the shape the design tool uses:
// {"unit": "AUTO"} for intrinsic line heights, {"value": px, "unit": "PIXELS"} otherwise.
func lineHeight(s *TypeStyle) any {
	if s.LineHeightUnit == "INTRINSIC_%" {
		return map[string]any{"unit": "AUTO"}
	}

	if s.LineHeightPx > 0 {
		return map[string]any{"value": s.LineHeightPx, "unit": "PIXELS"}
	}

	return nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
