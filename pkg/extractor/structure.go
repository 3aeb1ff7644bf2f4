package extractor

import "github.com/kataras/hermes/pkg/design"

// ExtractStructure reports the auto-layout settings, resize constraints and
// proportional-resize flag of node. Values are copied verbatim.
//
// A node that exposes a layout mode is considered auto-layout, even when the mode
// itself is NONE; the remaining auto-layout fields are read only in that case.
func ExtractStructure(node *design.Node) *StructureData {
	s := &StructureData{}

	if node.LayoutMode != nil {
		s.IsAutoLayout = true
		s.LayoutMode = copyString(node.LayoutMode)
		s.LayoutAlign = copyString(node.LayoutAlign)
		s.LayoutGrow = copyFloat(node.LayoutGrow)
		s.PrimaryAxisSizingMode = copyString(node.PrimaryAxisSizingMode)
		s.CounterAxisSizingMode = copyString(node.CounterAxisSizingMode)
		s.PrimaryAxisAlignItems = copyString(node.PrimaryAxisAlignItems)
		s.CounterAxisAlignItems = copyString(node.CounterAxisAlignItems)
		s.PaddingLeft = copyFloat(node.PaddingLeft)
		s.PaddingRight = copyFloat(node.PaddingRight)
		s.PaddingTop = copyFloat(node.PaddingTop)
		s.PaddingBottom = copyFloat(node.PaddingBottom)
		s.ItemSpacing = copyFloat(node.ItemSpacing)
	}

	if node.Constraints != nil {
		s.Constraints = &Constraints{
			Horizontal: node.Constraints.Horizontal,
			Vertical:   node.Constraints.Vertical,
		}
	}

	if node.ConstrainProportions != nil {
		v := *node.ConstrainProportions
		s.ResponsiveResize = &v
	}

	return s
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
