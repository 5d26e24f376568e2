// Package evaluator runs the shading core over whole meshes on the CPU. It
// stands in for the GPU pipeline: the vertex stage maps every vertex through
// its instance transform, and the fragment stage shades batches of varyings
// across a reusable worker pool. Outputs are deterministic regardless of the
// worker count.
package evaluator

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Carmen-Shannon/lumen-go/engine/shading"
)

type evaluatorImpl struct {
	mu *sync.Mutex

	workers   int
	batchSize int
	pool      worker.DynamicWorkerPool
}

// Evaluator defines the interface for the CPU execution engine. One Evaluator
// owns a worker pool that is reused across calls; the inputs to each call are
// treated as read-only snapshots for the duration of that call.
type Evaluator interface {
	// TransformVertices runs the vertex stage over every vertex with a single
	// instance transform, producing the varyings the fragment stage consumes.
	//
	// Parameters:
	//   - vertices: the model-space vertices
	//   - model: the instance model matrix (column-major)
	//   - normal: the instance normal matrix (column-major)
	//   - cam: the frame camera snapshot
	//   - nt: the normal transform path
	//
	// Returns:
	//   - []shading.Varyings: one varyings record per input vertex, in order
	TransformVertices(vertices []shading.Vertex, model [16]float32, normal [9]float32, cam shading.Camera, nt shading.NormalTransform) []shading.Varyings

	// ShadeFragments runs the fragment stage over a batch of varyings in
	// parallel, returning one RGBA color per input in order.
	//
	// Parameters:
	//   - varyings: the interpolated per-fragment inputs
	//   - mat: the material samplers
	//   - cam: the frame camera snapshot
	//   - lights: the light buffer snapshot
	//   - count: the number of active lights at the front of the buffer
	//   - cfg: the lighting configuration
	//
	// Returns:
	//   - [][4]float32: the shaded colors, index-aligned with varyings
	ShadeFragments(varyings []shading.Varyings, mat shading.Material, cam shading.Camera, lights []shading.Light, count int, cfg shading.Config) [][4]float32

	// Close blocks until the pool's workers drain and idle-exit. The
	// Evaluator must not be used after Close returns.
	Close()
}

var _ Evaluator = &evaluatorImpl{}

// NewEvaluator creates an Evaluator with its worker pool started. Defaults to
// 4 workers and a batch size of 256 fragments per task.
//
// Parameters:
//   - opts: variadic list of EvaluatorBuilderOption functions to configure the evaluator
//
// Returns:
//   - Evaluator: a new Evaluator instance
func NewEvaluator(opts ...EvaluatorBuilderOption) Evaluator {
	e := &evaluatorImpl{
		mu:        &sync.Mutex{},
		workers:   4,
		batchSize: 256,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.pool = worker.NewDynamicWorkerPool(e.workers, 256, 1*time.Second)
	return e
}

func (e *evaluatorImpl) TransformVertices(vertices []shading.Vertex, model [16]float32, normal [9]float32, cam shading.Camera, nt shading.NormalTransform) []shading.Varyings {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]shading.Varyings, len(vertices))

	// Workers are reused across calls (no goroutine spawn overhead). A
	// WaitGroup provides the per-call barrier since pool.Wait() blocks until
	// workers idle-exit, which is unsuitable for repeated batch workloads.
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < len(vertices); start += e.batchSize {
		end := min(start+e.batchSize, len(vertices))
		wg.Add(1)
		lo, hi := start, end
		id := taskID
		taskID++
		e.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					out[i] = shading.TransformVertex(vertices[i], model, normal, cam, nt)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
	return out
}

func (e *evaluatorImpl) ShadeFragments(varyings []shading.Varyings, mat shading.Material, cam shading.Camera, lights []shading.Light, count int, cfg shading.Config) [][4]float32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([][4]float32, len(varyings))

	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < len(varyings); start += e.batchSize {
		end := min(start+e.batchSize, len(varyings))
		wg.Add(1)
		lo, hi := start, end
		id := taskID
		taskID++
		e.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					out[i] = shading.ShadeFragment(varyings[i], mat, cam, lights, count, cfg)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
	return out
}

func (e *evaluatorImpl) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pool.Wait()
}
