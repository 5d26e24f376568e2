package evaluator

type EvaluatorBuilderOption func(*evaluatorImpl)

// WithWorkers sets the worker pool size. Values below 1 are ignored.
//
// Parameters:
//   - workers: the number of pool workers
//
// Returns:
//   - EvaluatorBuilderOption: a function that sets the worker count
func WithWorkers(workers int) EvaluatorBuilderOption {
	return func(e *evaluatorImpl) {
		if workers >= 1 {
			e.workers = workers
		}
	}
}

// WithBatchSize sets how many fragments or vertices each pool task covers.
// Values below 1 are ignored.
//
// Parameters:
//   - batchSize: the per-task batch size
//
// Returns:
//   - EvaluatorBuilderOption: a function that sets the batch size
func WithBatchSize(batchSize int) EvaluatorBuilderOption {
	return func(e *evaluatorImpl) {
		if batchSize >= 1 {
			e.batchSize = batchSize
		}
	}
}
