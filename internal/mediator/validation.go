package mediator

import "github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/result"

// FieldFailure is one field-level validation finding. Failures keep the order
// the validator produced them in.
type FieldFailure struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const codeRequestValidation = "Request.Validation"

// ValidationCodes lists the codes the dispatch layer itself can emit.
func ValidationCodes() []result.Error {
	return []result.Error{
		result.Validation(codeRequestValidation, result.SeverityBusiness),
	}
}

// RegisterValidator wires the pluggable validator for one request type. The
// handler never sees a request that failed validation.
func RegisterValidator[R any](m *Mediator, validate func(req R) []FieldFailure) {
	t := requestType[R]()
	if _, dup := m.validators[t]; dup {
		configPanic("mediator: validator already registered for %s", t)
	}
	m.validators[t] = func(req any) []FieldFailure {
		return validate(req.(R))
	}
}

// collapse folds ordered field failures into the single validation error the
// pipeline hands back to the transport.
func collapse(failures []FieldFailure) result.Error {
	args := make([]result.Arg, 0, len(failures))
	for _, f := range failures {
		args = append(args, result.Arg{
			Key:   f.Field,
			Value: struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			}{Code: f.Code, Message: f.Message},
		})
	}
	return result.Validation(codeRequestValidation, result.SeverityBusiness, args...)
}
