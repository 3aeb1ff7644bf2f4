package extractor

// DesignData is the result of a single export: one NodeData per selected node,
// in selection order, stamped with the time the export started.
type DesignData struct {
	Timestamp string      `json:"timestamp"` // ISO-8601, UTC, millisecond precision
	Nodes     []*NodeData `json:"nodes"`
}

// NodeData holds everything extracted from one node. Optional sections are present
// only when the matching option was enabled.
type NodeData struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Type         string            `json:"type"`
	Screenshot   *string           `json:"screenshot,omitempty"` // data URI, empty when rendering failed
	Hierarchy    *HierarchyData    `json:"hierarchy,omitempty"`
	Measurements *MeasurementsData `json:"measurements,omitempty"`
	Styles       *StylesData       `json:"styles,omitempty"`
	Structure    *StructureData    `json:"structure,omitempty"`
}

// HierarchyData describes where a node sits in the tree and its component properties.
type HierarchyData struct {
	Parent              *string           `json:"parent,omitempty"`
	Children            []string          `json:"children,omitzero"`
	ComponentProperties map[string]any    `json:"componentProperties,omitzero"`
	VariantProperties   map[string]string `json:"variantProperties,omitzero"`
}

// MeasurementsData holds the geometry of a node. Margin is inferred from the parent
// and the previous sibling and is only an approximation of the real layout.
type MeasurementsData struct {
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Rotation *float64 `json:"rotation,omitempty"`
	Padding  *Box     `json:"padding,omitempty"`
	Margin   *Box     `json:"margin,omitempty"`
}

// Box holds per-side spacing values, each independently optional.
type Box struct {
	Top    *float64 `json:"top,omitempty"`
	Right  *float64 `json:"right,omitempty"`
	Bottom *float64 `json:"bottom,omitempty"`
	Left   *float64 `json:"left,omitempty"`
}

// Color is a converted paint color: the raw unit-interval channels plus a lowercase
// hex string (#rrggbb, or #rrggbbaa when not fully opaque).
type Color struct {
	R   float64 `json:"r"`
	G   float64 `json:"g"`
	B   float64 `json:"b"`
	A   float64 `json:"a"`
	Hex string  `json:"hex"`
}

// StylesData groups the visual styles of a node. A section is nil when the node has
// nothing to report for it, never an empty slice.
type StylesData struct {
	Fills      []FillStyle      `json:"fills,omitempty"`
	Strokes    []StrokeStyle    `json:"strokes,omitempty"`
	Effects    []EffectStyle    `json:"effects,omitempty"`
	Typography *TypographyStyle `json:"typography,omitempty"`
}

// FillStyle describes one fill paint.
type FillStyle struct {
	Type          string         `json:"type"`
	Color         *Color         `json:"color,omitempty"`
	GradientStops []GradientStop `json:"gradientStops,omitzero"`
	ImageURL      string         `json:"imageUrl,omitempty"`
	ScaleMode     string         `json:"scaleMode,omitempty"`
}

// GradientStop is a converted gradient color stop.
type GradientStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// StrokeStyle describes one stroke paint. Weight, alignment and dash pattern belong
// to the node and are repeated on every stroke.
type StrokeStyle struct {
	Color       Color     `json:"color"`
	Weight      float64   `json:"weight"`
	Alignment   string    `json:"alignment"`
	DashPattern []float64 `json:"dashPattern,omitempty"`
}

// EffectStyle describes one effect.
type EffectStyle struct {
	Type   string   `json:"type"`
	Radius *float64 `json:"radius,omitempty"`
	Color  *Color   `json:"color,omitempty"`
	Offset *Offset  `json:"offset,omitempty"`
	Spread *float64 `json:"spread,omitempty"`
}

// Offset is an effect offset.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TypographyStyle describes the text style of a TEXT node.
type TypographyStyle struct {
	FontFamily     string   `json:"fontFamily"`
	FontSize       float64  `json:"fontSize"`
	FontWeight     int      `json:"fontWeight"`
	LetterSpacing  *float64 `json:"letterSpacing,omitempty"`
	LineHeight     any      `json:"lineHeight,omitempty"`
	TextAlign      *string  `json:"textAlign,omitempty"`
	TextCase       *string  `json:"textCase,omitempty"`
	TextDecoration *string  `json:"textDecoration,omitempty"`
	Color          Color    `json:"color"`
}

// StructureData describes the layout behavior of a node. The auto-layout fields are
// only filled when IsAutoLayout is true.
type StructureData struct {
	LayoutMode            *string      `json:"layoutMode,omitempty"`
	LayoutAlign           *string      `json:"layoutAlign,omitempty"`
	LayoutGrow            *float64     `json:"layoutGrow,omitempty"`
	PrimaryAxisSizingMode *string      `json:"primaryAxisSizingMode,omitempty"`
	CounterAxisSizingMode *string      `json:"counterAxisSizingMode,omitempty"`
	PrimaryAxisAlignItems *string      `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems *string      `json:"counterAxisAlignItems,omitempty"`
	PaddingLeft           *float64     `json:"paddingLeft,omitempty"`
	PaddingRight          *float64     `json:"paddingRight,omitempty"`
	PaddingTop            *float64     `json:"paddingTop,omitempty"`
	PaddingBottom         *float64     `json:"paddingBottom,omitempty"`
	ItemSpacing           *float64     `json:"itemSpacing,omitempty"`
	Constraints           *Constraints `json:"constraints,omitempty"`
	ResponsiveResize      *bool        `json:"responsiveResize,omitempty"`
	IsAutoLayout          bool         `json:"isAutoLayout"`
}

// Constraints mirrors the node's resize constraints.
type Constraints struct {
	Horizontal string `json:"horizontal"`
	Vertical   string `json:"vertical"`
}
