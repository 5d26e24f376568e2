package instance

type InstanceBuilderOption func(*instanceImpl)

// WithPosition sets the instance's world-space translation.
//
// Parameters:
//   - x, y, z: translation components
//
// Returns:
//   - InstanceBuilderOption: a function that sets the instance's position
func WithPosition(x, y, z float32) InstanceBuilderOption {
	return func(i *instanceImpl) {
		i.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the instance's Euler rotation in radians.
//
// Parameters:
//   - x, y, z: rotation components
//
// Returns:
//   - InstanceBuilderOption: a function that sets the instance's rotation
func WithRotation(x, y, z float32) InstanceBuilderOption {
	return func(i *instanceImpl) {
		i.rotation = [3]float32{x, y, z}
	}
}

// WithScale sets the instance's per-axis scale.
//
// Parameters:
//   - x, y, z: scale components
//
// Returns:
//   - InstanceBuilderOption: a function that sets the instance's scale
func WithScale(x, y, z float32) InstanceBuilderOption {
	return func(i *instanceImpl) {
		i.scale = [3]float32{x, y, z}
	}
}
