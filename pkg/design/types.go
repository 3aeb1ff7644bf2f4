package design

import (
	"context"
	"encoding/base64"
)

// Node represents a single element of the host's design document tree.
//
// Identity, geometry and visibility are always present. Every other attribute group is
// optional and independently present or absent depending on the concrete node kind:
// a nil pointer, nil slice or nil map means the node does not expose that attribute.
// Children follows the same rule, a nil slice means the node is not a container while
// an empty, non-nil slice is a container without children.
//
// Parent is a weak back-reference populated by Link and is never serialized.
type Node struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Type    string  `json:"type" yaml:"type"` // FRAME, TEXT, RECTANGLE, COMPONENT, INSTANCE, GROUP, etc.
	Parent  *Node   `json:"-" yaml:"-"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	Visible bool    `json:"visible" yaml:"visible"`
	Locked  bool    `json:"locked" yaml:"locked"`

	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`

	Rotation             *float64     `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Constraints          *Constraints `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	ConstrainProportions *bool        `json:"constrainProportions,omitempty" yaml:"constrainProportions,omitempty"`

	// Auto-layout.
	LayoutMode            *string  `json:"layoutMode,omitempty" yaml:"layoutMode,omitempty"`
	LayoutAlign           *string  `json:"layoutAlign,omitempty" yaml:"layoutAlign,omitempty"`
	LayoutGrow            *float64 `json:"layoutGrow,omitempty" yaml:"layoutGrow,omitempty"`
	PrimaryAxisSizingMode *string  `json:"primaryAxisSizingMode,omitempty" yaml:"primaryAxisSizingMode,omitempty"`
	CounterAxisSizingMode *string  `json:"counterAxisSizingMode,omitempty" yaml:"counterAxisSizingMode,omitempty"`
	PrimaryAxisAlignItems *string  `json:"primaryAxisAlignItems,omitempty" yaml:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems *string  `json:"counterAxisAlignItems,omitempty" yaml:"counterAxisAlignItems,omitempty"`
	PaddingLeft           *float64 `json:"paddingLeft,omitempty" yaml:"paddingLeft,omitempty"`
	PaddingRight          *float64 `json:"paddingRight,omitempty" yaml:"paddingRight,omitempty"`
	PaddingTop            *float64 `json:"paddingTop,omitempty" yaml:"paddingTop,omitempty"`
	PaddingBottom         *float64 `json:"paddingBottom,omitempty" yaml:"paddingBottom,omitempty"`
	ItemSpacing           *float64 `json:"itemSpacing,omitempty" yaml:"itemSpacing,omitempty"`

	// Geometry paints.
	Fills        []Paint   `json:"fills,omitempty" yaml:"fills,omitempty"`
	Strokes      []Paint   `json:"strokes,omitempty" yaml:"strokes,omitempty"`
	StrokeWeight *float64  `json:"strokeWeight,omitempty" yaml:"strokeWeight,omitempty"`
	StrokeAlign  *string   `json:"strokeAlign,omitempty" yaml:"strokeAlign,omitempty"`
	DashPattern  []float64 `json:"dashPattern,omitempty" yaml:"dashPattern,omitempty"`
	Effects      []Effect  `json:"effects,omitempty" yaml:"effects,omitempty"`

	// Text (TEXT nodes only).
	Characters          string    `json:"characters,omitempty" yaml:"characters,omitempty"`
	FontName            *FontName `json:"fontName,omitempty" yaml:"fontName,omitempty"`
	FontSize            *float64  `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	LetterSpacing       *float64  `json:"letterSpacing,omitempty" yaml:"letterSpacing,omitempty"`
	LineHeight          any       `json:"lineHeight,omitempty" yaml:"lineHeight,omitempty"` // number or string, copied verbatim
	TextAlignHorizontal *string   `json:"textAlignHorizontal,omitempty" yaml:"textAlignHorizontal,omitempty"`
	TextCase            *string   `json:"textCase,omitempty" yaml:"textCase,omitempty"`
	TextDecoration      *string   `json:"textDecoration,omitempty" yaml:"textDecoration,omitempty"`

	// Components and instances.
	ComponentProperties map[string]any `json:"componentProperties,omitempty" yaml:"componentProperties,omitempty"`
	VariantProperties   map[string]any `json:"variantProperties,omitempty" yaml:"variantProperties,omitempty"`
}

// IsContainer reports whether the node exposes a children collection.
func (n *Node) IsContainer() bool {
	return n.Children != nil
}

// IndexOf returns the position of child within n's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// RGB is a color with channels in the unit interval. A is nil for plain RGB colors
// and is treated as fully opaque by consumers.
type RGB struct {
	R float64  `json:"r" yaml:"r"`
	G float64  `json:"g" yaml:"g"`
	B float64  `json:"b" yaml:"b"`
	A *float64 `json:"a,omitempty" yaml:"a,omitempty"`
}

// Paint represents a fill or stroke applied to a node.
type Paint struct {
	Type          string         `json:"type" yaml:"type"` // SOLID, GRADIENT_LINEAR, GRADIENT_RADIAL, GRADIENT_ANGULAR, GRADIENT_DIAMOND, IMAGE, EMOJI
	Visible       *bool          `json:"visible,omitempty" yaml:"visible,omitempty"`
	Opacity       *float64       `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	Color         *RGB           `json:"color,omitempty" yaml:"color,omitempty"`
	BlendMode     string         `json:"blendMode,omitempty" yaml:"blendMode,omitempty"`
	GradientStops []GradientStop `json:"gradientStops,omitempty" yaml:"gradientStops,omitempty"`
	ScaleMode     string         `json:"scaleMode,omitempty" yaml:"scaleMode,omitempty"`
}

// GradientStop is a single color stop of a gradient paint.
type GradientStop struct {
	Position float64 `json:"position" yaml:"position"`
	Color    RGB     `json:"color" yaml:"color"`
}

// Effect represents a shadow or blur applied to a node.
type Effect struct {
	Type    string   `json:"type" yaml:"type"` // INNER_SHADOW, DROP_SHADOW, LAYER_BLUR, BACKGROUND_BLUR
	Visible *bool    `json:"visible,omitempty" yaml:"visible,omitempty"`
	Radius  *float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Color   *RGB     `json:"color,omitempty" yaml:"color,omitempty"`
	Offset  *Vector  `json:"offset,omitempty" yaml:"offset,omitempty"`
	Spread  *float64 `json:"spread,omitempty" yaml:"spread,omitempty"`
}

// Vector is a 2D offset.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// FontName identifies a font family and its style, e.g. {"Inter", "Semi Bold Italic"}.
type FontName struct {
	Family string `json:"family" yaml:"family"`
	Style  string `json:"style" yaml:"style"`
}

// Constraints defines how a node behaves when its parent is resized.
type Constraints struct {
	Horizontal string `json:"horizontal" yaml:"horizontal"`
	Vertical   string `json:"vertical" yaml:"vertical"`
}

// ExportSettings describes the image a Host should render for a node.
type ExportSettings struct {
	Format     string // PNG, JPG, SVG, PDF
	Constraint ExportConstraint
}

// ExportConstraint scales the rendered image.
type ExportConstraint struct {
	Type  string // SCALE, WIDTH, HEIGHT
	Value float64
}

// Host is the set of services the design tool provides to the export pipeline.
type Host interface {
	// ExportImage renders node with the given settings and returns the encoded image bytes.
	ExportImage(ctx context.Context, node *Node, settings ExportSettings) ([]byte, error)
	// Base64Encode encodes image bytes for embedding in a data URI.
	Base64Encode(data []byte) string
}

// EncodeBase64 is the standard base64 encoding used by the built-in hosts.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Ptr returns a pointer to v. It keeps optional attribute literals short.
func Ptr[T any](v T) *T {
	return &v
}
