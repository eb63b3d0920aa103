package result

import "strings"

type Category int

const (
	CategoryNone Category = iota
	CategoryValidation
	CategoryUnauthorized
	CategoryForbidden
	CategoryNotFound
	CategoryConflict
	CategoryUnprocessableEntity
	CategoryTooManyRequests
	CategoryServiceUnavailable
	CategoryInternal
)

// HTTPStatus is the fixed category-to-status table the transport relies on.
func (c Category) HTTPStatus() int {
	switch c {
	case CategoryNone:
		return 200
	case CategoryValidation:
		return 400
	case CategoryUnauthorized:
		return 401
	case CategoryForbidden:
		return 403
	case CategoryNotFound:
		return 404
	case CategoryConflict:
		return 409
	case CategoryUnprocessableEntity:
		return 422
	case CategoryTooManyRequests:
		return 429
	case CategoryServiceUnavailable:
		return 503
	default:
		return 500
	}
}

func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryValidation:
		return "validation"
	case CategoryUnauthorized:
		return "unauthorized"
	case CategoryForbidden:
		return "forbidden"
	case CategoryNotFound:
		return "not_found"
	case CategoryConflict:
		return "conflict"
	case CategoryUnprocessableEntity:
		return "unprocessable_entity"
	case CategoryTooManyRequests:
		return "too_many_requests"
	case CategoryServiceUnavailable:
		return "service_unavailable"
	default:
		return "internal"
	}
}

type Severity int

const (
	SeverityBusiness Severity = iota
	SeverityTechnical
)

func (s Severity) String() string {
	if s == SeverityTechnical {
		return "technical"
	}
	return "business"
}

// Arg is one named value attached to an error for message templating.
// Args keep insertion order; order carries no meaning beyond presentation.
type Arg struct {
	Key   string
	Value any
}

// Error is an immutable failure descriptor. Two errors are equal iff their
// codes are equal. The zero value is None, which only ever accompanies success.
type Error struct {
	code     string
	category Category
	severity Severity
	args     []Arg
}

var None = Error{}

func newError(code string, category Category, severity Severity, args []Arg) Error {
	return Error{
		code:     strings.TrimSpace(code),
		category: category,
		severity: severity,
		args:     args,
	}
}

func Validation(code string, severity Severity, args ...Arg) Error {
	return newError(code, CategoryValidation, severity, args)
}

func Unauthorized(code string, severity Severity, args ...Arg) Error {
	return newError(code, CategoryUnauthorized, severity, args)
}

func Forbidden(code string, severity Severity, args ...Arg) Error {
	return newError(code, CategoryForbidden, severity, args)
}

func NotFound(code string, severity Severity, args ...Arg) Error {
	return newError(code, CategoryNotFound, severity, args)
}

func Conflict(code string, severity Severity, args ...Arg) Error {
	return newError(code, CategoryConflict, severity, args)
}

func UnprocessableEntity(code string, severity Severity, args ...Arg) Error {
	return newError(code, CategoryUnprocessableEntity, severity, args)
}

func TooManyRequests(code string, severity Severity, args ...Arg) Error {
	return newError(code, CategoryTooManyRequests, severity, args)
}

func ServiceUnavailable(code string, severity Severity, args ...Arg) Error {
	return newError(code, CategoryServiceUnavailable, severity, args)
}

func Internal(code string, severity Severity, args ...Arg) Error {
	return newError(code, CategoryInternal, severity, args)
}

func (e Error) Code() string       { return e.code }
func (e Error) Category() Category { return e.category }
func (e Error) Severity() Severity { return e.severity }

func (e Error) Args() []Arg {
	out := make([]Arg, len(e.args))
	copy(out, e.args)
	return out
}

func (e Error) IsNone() bool { return e.code == "" }

func (e Error) Equal(other Error) bool { return e.code == other.code }

// WithArgs returns a copy carrying the given args, preserving code identity.
func (e Error) WithArgs(args ...Arg) Error {
	return newError(e.code, e.category, e.severity, args)
}
