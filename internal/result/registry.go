package result

import "fmt"

// CodeRegistry validates at startup that every declared error code is unique
// and non-empty. Packages expose their code lists explicitly and bootstrap
// registers them all; a collision is a wiring defect and aborts the process.
type CodeRegistry struct {
	codes map[string]Error
}

func NewCodeRegistry() *CodeRegistry {
	return &CodeRegistry{codes: make(map[string]Error)}
}

func (r *CodeRegistry) MustAdd(errs ...Error) *CodeRegistry {
	for _, e := range errs {
		if e.Code() == "" {
			panic("result: error code is empty")
		}
		if _, dup := r.codes[e.Code()]; dup {
			panic(fmt.Sprintf("result: duplicate error code %q", e.Code()))
		}
		r.codes[e.Code()] = e
	}
	return r
}

func (r *CodeRegistry) Known(code string) bool {
	_, ok := r.codes[code]
	return ok
}

func (r *CodeRegistry) Len() int { return len(r.codes) }
