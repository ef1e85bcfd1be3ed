package eval

import "github.com/lyraproj/issue/issue"

const (
	IterExhausted         = `ITER_EXHAUSTED`
	IterIllegalUnpackSize = `ITER_ILLEGAL_UNPACK_SIZE`
	IterNotIterable       = `ITER_NOT_ITERABLE`
	ParseError            = `PARSE_ERROR`
	TuningBadProfile      = `TUNING_BAD_PROFILE`
	TuningTypeMismatch    = `TUNING_TYPE_MISMATCH`
	TuningUnknownOption   = `TUNING_UNKNOWN_OPTION`
)

func init() {
	issue.Hard(IterExhausted, `Attempt to read the current element of an exhausted %{kind} iterator`)

	issue.Hard(IterIllegalUnpackSize, `Mismatched number of values to unpack, expected %{expected}, got %{actual}`)

	issue.Hard(IterNotIterable, `'%{kind}' object is not iterable`)

	issue.Hard(ParseError, `Unable to parse %{language}: %{detail}`)

	issue.Hard(TuningBadProfile, `Unable to read tuning profile '%{path}': %{detail}`)

	issue.Hard(TuningTypeMismatch, `%{what} must be a '%{expected}' object but received a '%{actual}'`)

	issue.Hard(TuningUnknownOption, `unknown option name '%{name}'`)
}

// Error creates a Reported with the given issue code and arguments. Typical use is to
// panic with, or return, the result.
func Error(code issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SEVERITY_ERROR, args, nil)
}

// IsReported returns true when err is a Reported with the given code
func IsReported(err interface{}, code issue.Code) bool {
	if r, ok := err.(issue.Reported); ok {
		return r.Code() == code
	}
	return false
}
