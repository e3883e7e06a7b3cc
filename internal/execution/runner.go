package execution

import "context"

// Result is what the execution collaborator reports for a submission.
type Result struct {
	Accepted bool   `json:"accepted"`
	Output   string `json:"output"`
	Status   string `json:"status"`
	Time     string `json:"time"`
	Memory   string `json:"memory"`
}

// Runner executes candidate code. Implementations are external collaborators
// with bounded latency; a real one must sandbox execution.
type Runner interface {
	Run(ctx context.Context, code, language string) (Result, error)
}

// SimulatedRunner accepts every submission with canned output. It stands in
// until a sandboxed execution service exists.
type SimulatedRunner struct{}

func NewSimulatedRunner() *SimulatedRunner {
	return &SimulatedRunner{}
}

func (r *SimulatedRunner) Run(ctx context.Context, code, language string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Result{
		Accepted: true,
		Output:   "Code executed successfully.\n\nSample Output: [Expected results based on test cases]",
		Status:   "Accepted",
		Time:     "0.05s",
		Memory:   "2.1 MB",
	}, nil
}
