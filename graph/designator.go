package graph

import "github.com/c360studio/tagteam/vocabulary/tagteam"

// ComplexDesignator is a multi-word proper-name span found by
// ComplexDesignatorDetector (§3, §4.12).
type ComplexDesignator struct {
	ID    string
	Types []string
	Label string

	FullName      string
	NameComponents []string
	DenotedType   string // default "cco:Organization"
	Start, End    int
}

func (c *ComplexDesignator) NodeID() string      { return c.ID }
func (c *ComplexDesignator) NodeTypes() []string { return c.Types }
func (c *ComplexDesignator) NodeLabel() string    { return c.Label }

func (c *ComplexDesignator) Properties() map[string]any {
	return map[string]any{
		"fullName":       c.FullName,
		"nameComponents": c.NameComponents,
		"denotedType":    c.DenotedType,
		"start":          c.Start,
		"end":            c.End,
	}
}

// NewComplexDesignator constructs a ComplexDesignator with
// tagteam:ComplexDesignator and the default Organization denotation.
func NewComplexDesignator(id, fullName string, components []string, start, end int) *ComplexDesignator {
	return &ComplexDesignator{
		ID: id, Label: fullName, Types: []string{tagteam.ComplexDesignator},
		FullName: fullName, NameComponents: components, DenotedType: "cco:Organization",
		Start: start, End: end,
	}
}
