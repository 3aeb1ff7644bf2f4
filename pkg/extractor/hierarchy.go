package extractor

import "github.com/kataras/hermes/pkg/design"

// ExtractHierarchy reports the parent id, the ids of the direct children and the
// component and variant properties of node. Attributes the node does not expose are
// simply left out.
//
// Variant values that are not strings are dropped.
func ExtractHierarchy(node *design.Node) *HierarchyData {
	h := &HierarchyData{}

	if node.Parent != nil {
		parentID := node.Parent.ID
		h.Parent = &parentID
	}

	if node.IsContainer() {
		h.Children = make([]string, 0, len(node.Children))
		for _, child := range node.Children {
			if child == nil {
				continue
			}
			h.Children = append(h.Children, child.ID)
		}
	}

	if node.ComponentProperties != nil {
		h.ComponentProperties = make(map[string]any, len(node.ComponentProperties))
		for key, value := range node.ComponentProperties {
			h.ComponentProperties[key] = value
		}
	}

	if node.VariantProperties != nil {
		h.VariantProperties = make(map[string]string, len(node.VariantProperties))
		for key, value := range node.VariantProperties {
			if s, ok := value.(string); ok {
				h.VariantProperties[key] = s
			}
		}
	}

	return h
}
