package constants

// Icon names, resolved to embedded SVG documents by the icon renderer.
const (
	IconProducts = "products"
	IconAdd      = "add"
	IconCamera   = "camera"
	IconAlert    = "alert"
)
