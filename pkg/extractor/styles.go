package extractor

import (
	"fmt"
	"strings"

	"github.com/kataras/hermes/pkg/design"
)

// imageFillPlaceholder stands in for IMAGE fill data, which the host does not hand out.
const imageFillPlaceholder = "[Image data not available in plugin context]"

// placeholderStrokeColor is reported for strokes that are not SOLID.
var placeholderStrokeColor = Color{R: 0, G: 0, B: 0, A: 1, Hex: "#000000"}

// ExtractStyles reports the fills, strokes, effects and typography of node.
// Each section is left nil when it does not apply.
func ExtractStyles(node *design.Node) (*StylesData, error) {
	fills, err := extractFills(node)
	if err != nil {
		return nil, err
	}

	strokes, err := extractStrokes(node)
	if err != nil {
		return nil, err
	}

	typography, err := extractTypography(node)
	if err != nil {
		return nil, err
	}

	return &StylesData{
		Fills:      fills,
		Strokes:    strokes,
		Effects:    extractEffects(node),
		Typography: typography,
	}, nil
}

func isGradient(paintType string) bool {
	switch paintType {
	case "GRADIENT_LINEAR", "GRADIENT_RADIAL", "GRADIENT_ANGULAR", "GRADIENT_DIAMOND":
		return true
	default:
		return false
	}
}

func extractFills(node *design.Node) ([]FillStyle, error) {
	if len(node.Fills) == 0 {
		return nil, nil
	}

	fills := make([]FillStyle, 0, len(node.Fills))
	for i, fill := range node.Fills {
		style := FillStyle{Type: fill.Type}

		switch {
		case fill.Type == "SOLID":
			if fill.Color == nil {
				return nil, &MalformedNodeError{
					NodeID:    node.ID,
					Attribute: fmt.Sprintf("fills[%d].color", i),
					Err:       errMissingColor,
				}
			}
			c := ToColor(*fill.Color)
			style.Color = &c
		case isGradient(fill.Type):
			if fill.GradientStops != nil {
				style.GradientStops = make([]GradientStop, 0, len(fill.GradientStops))
				for _, stop := range fill.GradientStops {
					style.GradientStops = append(style.GradientStops, GradientStop{
						Position: stop.Position,
						Color:    ToColor(stop.Color),
					})
				}
			}
		case fill.Type == "IMAGE":
			style.ImageURL = imageFillPlaceholder
			style.ScaleMode = fill.ScaleMode
		}

		fills = append(fills, style)
	}

	return fills, nil
}

// extractStrokes needs the node to expose both a stroke weight and a stroke alignment.
// Strokes that are not SOLID get a black placeholder color.
func extractStrokes(node *design.Node) ([]StrokeStyle, error) {
	if len(node.Strokes) == 0 || node.StrokeWeight == nil || node.StrokeAlign == nil {
		return nil, nil
	}

	var dashPattern []float64
	if len(node.DashPattern) > 0 {
		dashPattern = node.DashPattern
	}

	strokes := make([]StrokeStyle, 0, len(node.Strokes))
	for i, stroke := range node.Strokes {
		color := placeholderStrokeColor
		if stroke.Type == "SOLID" {
			if stroke.Color == nil {
				return nil, &MalformedNodeError{
					NodeID:    node.ID,
					Attribute: fmt.Sprintf("strokes[%d].color", i),
					Err:       errMissingColor,
				}
			}
			color = ToColor(*stroke.Color)
		}

		strokes = append(strokes, StrokeStyle{
			Color:       color,
			Weight:      *node.StrokeWeight,
			Alignment:   *node.StrokeAlign,
			DashPattern: append([]float64(nil), dashPattern...),
		})
	}

	return strokes, nil
}

func extractEffects(node *design.Node) []EffectStyle {
	if len(node.Effects) == 0 {
		return nil
	}

	effects := make([]EffectStyle, 0, len(node.Effects))
	for _, effect := range node.Effects {
		style := EffectStyle{
			Type:   effect.Type,
			Radius: copyFloat(effect.Radius),
			Spread: copyFloat(effect.Spread),
		}

		if effect.Color != nil {
			c := ToColor(*effect.Color)
			style.Color = &c
		}

		if effect.Offset != nil {
			style.Offset = &Offset{X: effect.Offset.X, Y: effect.Offset.Y}
		}

		effects = append(effects, style)
	}

	return effects
}

// extractTypography applies to TEXT nodes that expose a font name, a font size and at
// least one fill. The text color comes from the first fill.
func extractTypography(node *design.Node) (*TypographyStyle, error) {
	if node.Type != "TEXT" || node.FontName == nil || node.FontSize == nil {
		return nil, nil
	}

	if len(node.Fills) == 0 {
		return nil, nil
	}

	first := node.Fills[0]
	if first.Color == nil {
		return nil, &MalformedNodeError{
			NodeID:    node.ID,
			Attribute: "fills[0].color",
			Err:       errMissingColor,
		}
	}

	return &TypographyStyle{
		FontFamily:     node.FontName.Family,
		FontSize:       *node.FontSize,
		FontWeight:     FontWeight(node.FontName.Style),
		LetterSpacing:  copyFloat(node.LetterSpacing),
		LineHeight:     node.LineHeight,
		TextAlign:      copyString(node.TextAlignHorizontal),
		TextCase:       copyString(node.TextCase),
		TextDecoration: copyString(node.TextDecoration),
		Color:          ToColor(*first.Color),
	}, nil
}

// FontWeight infers a numeric weight from a font style name. The first keyword found,
// checked in the order Bold, Medium, Light, decides; anything else is 400.
// Matching is case-sensitive, so "Semi Bold" is 700 and "ExtraLight" is 300.
func FontWeight(style string) int {
	switch {
	case strings.Contains(style, "Bold"):
		return 700
	case strings.Contains(style, "Medium"):
		return 500
	case strings.Contains(style, "Light"):
		return 300
	default:
		return 400
	}
}
