package layouts

// CalculateTitle appends the product name to a page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - FieldBase"
	}
	return "FieldBase"
}
