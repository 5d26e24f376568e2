package scene

import (
	"github.com/Carmen-Shannon/lumen-go/engine/camera"
	"github.com/Carmen-Shannon/lumen-go/engine/evaluator"
	"github.com/Carmen-Shannon/lumen-go/engine/shading"
)

type SceneBuilderOption func(*sceneImpl)

// WithCamera sets the scene camera.
//
// Parameters:
//   - cam: the camera to use
//
// Returns:
//   - SceneBuilderOption: a function that sets the scene's camera
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.camera = cam
	}
}

// WithConfig sets the scene's lighting configuration.
//
// Parameters:
//   - cfg: the lighting configuration
//
// Returns:
//   - SceneBuilderOption: a function that sets the scene's configuration
func WithConfig(cfg shading.Config) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.config = cfg
	}
}

// WithEvaluatorWorkers sets the worker count of the scene's CPU evaluator pool.
//
// Parameters:
//   - workers: the number of pool workers
//
// Returns:
//   - SceneBuilderOption: a function that configures the evaluator pool
func WithEvaluatorWorkers(workers int) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.evalOpts = append(s.evalOpts, evaluator.WithWorkers(workers))
	}
}
