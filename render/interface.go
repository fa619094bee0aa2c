package render

// Layer is one stage of the frame, drawn in priority order
type Layer interface {
	Render(f *Frame, c *Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
