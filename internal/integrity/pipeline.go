package integrity

import "context"

// Stage is one named step of a write pipeline. Run mutates the in-flight
// document or validates it; returning an error aborts the whole commit
// with no partial mutation persisted.
type Stage struct {
	Name string
	Run  func(ctx context.Context) error
}

// Run executes stages in order and stops at the first failure. Each
// entity's service composes its fixed stage order here, once per commit
// attempt (create or update), never for reads or deletes.
func Run(ctx context.Context, stages ...Stage) error {
	for _, st := range stages {
		if err := st.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}
