package execution

import (
	"context"

	"testhelper/internal/domain"
	"testhelper/internal/registry"
)

// Executor runs test cases and returns the run result
type Executor interface {
	Run(ctx context.Context, cases []registry.Case) (domain.RunResult, error)
}

// Progress receives updates after each finished case
type Progress interface {
	Update(done, passed, failed int)
	Finish()
}
