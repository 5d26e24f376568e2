package light

type PointLightBuilderOption func(*pointLightImpl)

// WithPosition sets the light's world-space position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - PointLightBuilderOption: a function that sets the light's position
func WithPosition(x, y, z float32) PointLightBuilderOption {
	return func(l *pointLightImpl) {
		l.position = [3]float32{x, y, z}
	}
}

// WithColor sets the light's RGB color.
//
// Parameters:
//   - r, g, b: color components
//
// Returns:
//   - PointLightBuilderOption: a function that sets the light's color
func WithColor(r, g, b float32) PointLightBuilderOption {
	return func(l *pointLightImpl) {
		l.color = [3]float32{r, g, b}
	}
}

// WithEnabled sets whether the light starts active.
//
// Parameters:
//   - enabled: true to activate the light
//
// Returns:
//   - PointLightBuilderOption: a function that sets the light's enabled state
func WithEnabled(enabled bool) PointLightBuilderOption {
	return func(l *pointLightImpl) {
		l.enabled = enabled
	}
}
