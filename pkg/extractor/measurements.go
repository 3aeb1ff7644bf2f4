package extractor

import (
	"fmt"

	"github.com/kataras/hermes/pkg/design"
)

// ExtractMeasurements reports the position, size, rotation and padding of node and
// infers its top and left margin from the parent and the previous sibling.
//
// The margin heuristic assumes siblings stack vertically in children order. It
// ignores auto-layout direction, wrapping and absolute positioning:
//
//	left = node.x - parent.x
//	top  = node.y - (previous.y + previous.height)  when node is not the first child
//	top  = node.y - parent.y                         otherwise
func ExtractMeasurements(node *design.Node) (*MeasurementsData, error) {
	m := &MeasurementsData{
		X:      node.X,
		Y:      node.Y,
		Width:  node.Width,
		Height: node.Height,
	}

	if node.Rotation != nil {
		rotation := *node.Rotation
		m.Rotation = &rotation
	}

	padding := Box{
		Top:    copyFloat(node.PaddingTop),
		Right:  copyFloat(node.PaddingRight),
		Bottom: copyFloat(node.PaddingBottom),
		Left:   copyFloat(node.PaddingLeft),
	}
	if padding.Top != nil || padding.Right != nil || padding.Bottom != nil || padding.Left != nil {
		m.Padding = &padding
	}

	if parent := node.Parent; parent != nil && parent.IsContainer() {
		margin := &Box{}

		if i := parent.IndexOf(node); i > 0 {
			prev := parent.Children[i-1]
			if prev == nil {
				return nil, &MalformedNodeError{
					NodeID:    parent.ID,
					Attribute: fmt.Sprintf("children[%d]", i-1),
					Err:       errNilNode,
				}
			}
			margin.Top = design.Ptr(node.Y - (prev.Y + prev.Height))
		} else {
			margin.Top = design.Ptr(node.Y - parent.Y)
		}
		margin.Left = design.Ptr(node.X - parent.X)

		m.Margin = margin
	}

	return m, nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
