// Package scene ties the lighting core's pieces together: a camera, a point
// light collection, and instanced objects. It produces the per-frame GPU
// upload set for the instanced pipeline and runs the equivalent CPU path
// through the evaluator, so the same scene can be drawn or verified without a
// device.
package scene

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/lumen-go/engine/camera"
	"github.com/Carmen-Shannon/lumen-go/engine/evaluator"
	"github.com/Carmen-Shannon/lumen-go/engine/light"
	"github.com/Carmen-Shannon/lumen-go/engine/renderer/shader"
	"github.com/Carmen-Shannon/lumen-go/engine/shading"
)

// FrameData is the per-frame GPU upload set: one buffer image per bind group
// slot of the instanced lighting pipeline, plus the per-object instance
// buffers keyed by object name.
type FrameData struct {
	CameraUniform   []byte            // group 1 binding 0
	LightBuffer     []byte            // group 2 binding 0
	LightCount      []byte            // group 2 binding 1
	InstanceBuffers map[string][]byte // per-object instance vertex buffers
}

type sceneImpl struct {
	mu *sync.Mutex

	camera  camera.Camera
	lights  light.PointLightCollection
	objects []Object
	eval    evaluator.Evaluator
	config  shading.Config

	evalOpts []evaluator.EvaluatorBuilderOption
}

// Scene defines the interface for a lit scene. The scene owns its camera and
// light collection; objects are added after construction. One lighting
// configuration applies to the whole scene and, together with each object's
// material, determines the shader variant per object.
type Scene interface {
	// Camera retrieves the scene camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Lights retrieves the scene's point light collection.
	//
	// Returns:
	//   - light.PointLightCollection: the light collection
	Lights() light.PointLightCollection

	// AddObject adds a renderable object to the scene.
	//
	// Parameters:
	//   - obj: the object to add
	AddObject(obj Object)

	// Objects retrieves the scene's objects in insertion order.
	//
	// Returns:
	//   - []Object: the objects
	Objects() []Object

	// Config retrieves the scene's lighting configuration.
	//
	// Returns:
	//   - shading.Config: the configuration
	Config() shading.Config

	// Variant returns the shader variant an object is drawn with, derived
	// from the scene configuration and the object's material.
	//
	// Parameters:
	//   - obj: the object
	//
	// Returns:
	//   - shader.Variant: the variant selecting the object's pipeline
	Variant(obj Object) shader.Variant

	// FrameData snapshots the scene into the per-frame GPU upload set and
	// stamps each object's material with its pipeline key.
	//
	// Returns:
	//   - FrameData: the upload buffers for this frame
	FrameData() FrameData

	// EvaluateObject runs the CPU reference path for one object: every
	// instance's vertices go through the vertex stage and are shaded at the
	// vertex positions against the scene's active lights.
	//
	// Parameters:
	//   - obj: the object to evaluate
	//
	// Returns:
	//   - [][][4]float32: per-instance, per-vertex shaded colors
	//   - error: non-nil if the object has no instances
	EvaluateObject(obj Object) ([][][4]float32, error)

	// Close releases the scene's evaluator pool.
	Close()
}

var _ Scene = &sceneImpl{}

// NewScene creates a Scene with a default camera, an empty light collection,
// the default lighting configuration, and any provided options applied.
//
// Parameters:
//   - opts: variadic list of SceneBuilderOption functions to configure the scene
//
// Returns:
//   - Scene: a new Scene instance
func NewScene(opts ...SceneBuilderOption) Scene {
	s := &sceneImpl{
		mu:     &sync.Mutex{},
		lights: light.NewPointLightCollection(),
		config: shading.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.camera == nil {
		s.camera = camera.NewCamera()
	}
	s.eval = evaluator.NewEvaluator(s.evalOpts...)
	return s
}

func (s *sceneImpl) Camera() camera.Camera {
	return s.camera
}

func (s *sceneImpl) Lights() light.PointLightCollection {
	return s.lights
}

func (s *sceneImpl) AddObject(obj Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = append(s.objects, obj)
}

func (s *sceneImpl) Objects() []Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *sceneImpl) Config() shading.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

func (s *sceneImpl) Variant(obj Object) shader.Variant {
	return shader.Variant{
		Lighting:     shader.LightingModeMulti,
		NormalMapped: obj.Material().NormalMapped(),
		Config:       s.Config(),
	}
}

func (s *sceneImpl) FrameData() FrameData {
	s.mu.Lock()
	objects := make([]Object, len(s.objects))
	copy(objects, s.objects)
	s.mu.Unlock()

	u := s.camera.Uniform()
	fd := FrameData{
		CameraUniform:   u.Marshal(),
		LightBuffer:     s.lights.MarshalBuffer(),
		LightCount:      s.lights.MarshalCount(),
		InstanceBuffers: make(map[string][]byte, len(objects)),
	}
	for _, obj := range objects {
		fd.InstanceBuffers[obj.Name()] = obj.MarshalInstanceBuffer()
		obj.Material().SetPipelineKey(s.Variant(obj).Key())
	}
	return fd
}

func (s *sceneImpl) EvaluateObject(obj Object) ([][][4]float32, error) {
	instances := obj.Instances()
	if len(instances) == 0 {
		return nil, fmt.Errorf("scene: object %q has no instances to evaluate", obj.Name())
	}

	cam := s.camera.Snapshot()
	lights := s.lights.Snapshot()
	cfg := s.Config()
	mat := obj.Material().Shading()
	vertices := obj.Mesh().Snapshot()

	out := make([][][4]float32, len(instances))
	for i, inst := range instances {
		varyings := s.eval.TransformVertices(vertices, inst.ModelMatrix(), inst.NormalMatrix(), cam, cfg.NormalTransform)
		out[i] = s.eval.ShadeFragments(varyings, mat, cam, lights, len(lights), cfg)
	}
	return out, nil
}

func (s *sceneImpl) Close() {
	s.eval.Close()
}
