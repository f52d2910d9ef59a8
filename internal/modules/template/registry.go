package template

// Registry is an immutable catalog of variant templates. Lookups preserve
// declaration order; there is no mutation API.
type Registry struct {
	templates []VariantTemplate
	byID      map[string]int
}

// NewRegistry builds a registry from the given templates. Declaration order
// is the order templates are listed here.
func NewRegistry(templates ...VariantTemplate) *Registry {
	r := &Registry{
		templates: templates,
		byID:      make(map[string]int, len(templates)),
	}
	for i, t := range templates {
		r.byID[t.ID] = i
	}
	return r
}

// ByID looks a template up by its catalog identifier.
func (r *Registry) ByID(id string) (VariantTemplate, bool) {
	i, ok := r.byID[id]
	if !ok {
		return VariantTemplate{}, false
	}
	return r.templates[i], true
}

// ByCategory returns every template in the given category, in declaration
// order.
func (r *Registry) ByCategory(c Category) []VariantTemplate {
	var out []VariantTemplate
	for _, t := range r.templates {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// All returns every template in declaration order.
func (r *Registry) All() []VariantTemplate {
	out := make([]VariantTemplate, len(r.templates))
	copy(out, r.templates)
	return out
}
