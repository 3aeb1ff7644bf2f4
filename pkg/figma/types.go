package figma

// NodesResponse represents the response from the Figma nodes API endpoint when fetching specific nodes.
// Nodes that do not exist in the file are returned as null entries.
type NodesResponse struct {
	Name         string               `json:"name"`
	LastModified string               `json:"lastModified"`
	Version      string               `json:"version"`
	Nodes        map[string]*NodeData `json:"nodes"`
}

// NodeData wraps a node with its document structure and optional component information.
type NodeData struct {
	Document   Node                 `json:"document"`
	Components map[string]Component `json:"components,omitempty"`
}

// Component represents a Figma component definition with its metadata.
type Component struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ImagesResponse represents the response from the Figma render endpoint.
// Images maps node IDs to temporary download URLs; a null URL means the node could not be rendered.
type ImagesResponse struct {
	Err    string            `json:"err,omitempty"`
	Images map[string]string `json:"images"`
}

// Node represents a single element in the Figma document tree as returned by the REST API.
// Optional properties are pointers or nil slices so that absent values can be told apart from zero values.
type Node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Visible  *bool  `json:"visible,omitempty"` // absent means visible
	Locked   bool   `json:"locked,omitempty"`
	Children []Node `json:"children,omitempty"`

	AbsoluteBoundingBox *Rectangle        `json:"absoluteBoundingBox,omitempty"`
	Rotation            *float64          `json:"rotation,omitempty"` // radians
	Constraints         *LayoutConstraint `json:"constraints,omitempty"`
	PreserveRatio       *bool             `json:"preserveRatio,omitempty"`

	Fills        []Paint   `json:"fills,omitempty"`
	Strokes      []Paint   `json:"strokes,omitempty"`
	StrokeWeight *float64  `json:"strokeWeight,omitempty"`
	StrokeAlign  string    `json:"strokeAlign,omitempty"`
	StrokeDashes []float64 `json:"strokeDashes,omitempty"`
	Effects      []Effect  `json:"effects,omitempty"`

	Characters string     `json:"characters,omitempty"`
	Style      *TypeStyle `json:"style,omitempty"`

	LayoutMode            string   `json:"layoutMode,omitempty"`
	LayoutAlign           string   `json:"layoutAlign,omitempty"`
	LayoutGrow            *float64 `json:"layoutGrow,omitempty"`
	PrimaryAxisSizingMode string   `json:"primaryAxisSizingMode,omitempty"`
	CounterAxisSizingMode string   `json:"counterAxisSizingMode,omitempty"`
	PrimaryAxisAlignItems string   `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems string   `json:"counterAxisAlignItems,omitempty"`
	PaddingLeft           *float64 `json:"paddingLeft,omitempty"`
	PaddingRight          *float64 `json:"paddingRight,omitempty"`
	PaddingTop            *float64 `json:"paddingTop,omitempty"`
	PaddingBottom         *float64 `json:"paddingBottom,omitempty"`
	ItemSpacing           *float64 `json:"itemSpacing,omitempty"`

	ComponentProperties map[string]ComponentProperty `json:"componentProperties,omitempty"`
}

// ComponentProperty is the value of a property set on a component instance.
// Type is one of BOOLEAN, TEXT, INSTANCE_SWAP or VARIANT.
type ComponentProperty struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Color represents an RGBA color with float values ranging from 0 to 1.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint represents a fill or stroke applied to a Figma node.
// It includes the paint type (SOLID, GRADIENT_LINEAR, IMAGE, etc.), visibility, opacity, and color information.
type Paint struct {
	Type          string      `json:"type"`
	Visible       *bool       `json:"visible,omitempty"`
	Opacity       *float64    `json:"opacity,omitempty"`
	Color         *Color      `json:"color,omitempty"`
	BlendMode     string      `json:"blendMode,omitempty"`
	GradientStops []ColorStop `json:"gradientStops,omitempty"`
	ScaleMode     string      `json:"scaleMode,omitempty"`
	ImageRef      string      `json:"imageRef,omitempty"`
}

// ColorStop is a position and color pair of a gradient paint.
type ColorStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// Effect represents a visual effect applied to a Figma node such as drop shadows, inner shadows, or blur effects.
type Effect struct {
	Type      string   `json:"type"`
	Visible   *bool    `json:"visible,omitempty"`
	Radius    *float64 `json:"radius,omitempty"`
	Color     *Color   `json:"color,omitempty"`
	Offset    *Vector  `json:"offset,omitempty"`
	Spread    *float64 `json:"spread,omitempty"`
	BlendMode string   `json:"blendMode,omitempty"`
}

// Vector represents a 2D coordinate or offset with X and Y values.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TypeStyle represents text styling properties from Figma.
type TypeStyle struct {
	FontFamily          string   `json:"fontFamily"`
	FontPostScriptName  string   `json:"fontPostScriptName"`
	FontWeight          float64  `json:"fontWeight"`
	Italic              bool     `json:"italic,omitempty"`
	FontSize            float64  `json:"fontSize"`
	LetterSpacing       *float64 `json:"letterSpacing,omitempty"`
	LineHeightPx        float64  `json:"lineHeightPx,omitempty"`
	LineHeightUnit      string   `json:"lineHeightUnit,omitempty"` // PIXELS, FONT_SIZE_%, INTRINSIC_%
	TextAlignHorizontal string   `json:"textAlignHorizontal,omitempty"`
	TextCase            string   `json:"textCase,omitempty"`
	TextDecoration      string   `json:"textDecoration,omitempty"`
}

// Rectangle represents a bounding box with position (X, Y) and dimensions (Width, Height).
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// LayoutConstraint defines how a node's position and size behave when its parent is resized.
type LayoutConstraint struct {
	Vertical   string `json:"vertical"`
	Horizontal string `json:"horizontal"`
}
