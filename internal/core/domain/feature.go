package domain

// BoundaryFeature is one region from an external geometry dataset. The core
// never owns or mutates it; only the property bag is read during resolution.
// Property keys are inconsistent across datasets (ISO_A3 vs iso_a3 vs
// ISO3166-1-Alpha-3, ADMIN vs NAME vs name_long, ...), which is exactly the
// problem the resolver exists to solve.
type BoundaryFeature struct {
	Properties map[string]any `json:"properties"`
}

// Property returns the string value for key, if present and a string.
func (f BoundaryFeature) Property(key string) (string, bool) {
	v, ok := f.Properties[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
