package contracts

// Optional values are pointers: nil means absent and renders as JSON null.

// Float returns a pointer to v
func Float(v float64) *float64 {
	return &v
}

// FloatOr returns *p, or def when p is nil
func FloatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// Str returns a pointer to s, nil for the empty string
func Str(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StrOr returns *p, or def when p is nil or empty
func StrOr(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}
