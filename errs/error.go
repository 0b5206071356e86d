package errs

import (
	"bytes"
	"strconv"
)

// Kind classifies a chart error so callers can branch on the category
// with errors.Is without parsing messages.
type Kind uint8

const (
	// InvalidData marks a dataset with the wrong shape or non-numeric values.
	InvalidData Kind = iota + 1
	// InvalidCategories marks a malformed or empty category list.
	InvalidCategories
	// DataCategoryMismatch marks a series whose length disagrees with the
	// category count while auto-adjustment is disabled.
	DataCategoryMismatch
	// InvalidColorFormat marks a color spec with the wrong shape (bad hex
	// string, wrong component count).
	InvalidColorFormat
	// InvalidColorRange marks color components outside [0,1].
	InvalidColorRange
	// InvalidGradientSpec marks a gradient with fewer than two valid hex
	// colors or a malformed entry.
	InvalidGradientSpec
)

func (k Kind) String() string {
	switch k {
	case InvalidData:
		return "invalid data"
	case InvalidCategories:
		return "invalid categories"
	case DataCategoryMismatch:
		return "data category mismatch"
	case InvalidColorFormat:
		return "invalid color format"
	case InvalidColorRange:
		return "invalid color range"
	case InvalidGradientSpec:
		return "invalid gradient spec"
	}
	return "unknown error"
}

// Error makes a Kind usable as an errors.Is target.
func (k Kind) Error() string { return k.String() }

type chartError struct {
	kind    Kind
	message string
}

func (e *chartError) Error() string {
	if e.message == "" {
		return e.kind.String()
	}
	return e.kind.String() + ": " + e.message
}

func (e *chartError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.kind
}

// New builds a chart error of the given kind from loosely typed arguments,
// joined with single spaces.
func New(kind Kind, args ...any) error {

	var out bytes.Buffer
	var space string

	for argNumber, arg := range args {
		switch v := arg.(type) {
		case string:
			if v == "" {
				continue
			}
			out.WriteString(space + v)
		case []string:
			for _, s := range v {
				if s == "" {
					continue
				}
				out.WriteString(space + s)
				space = " "
			}
		case rune:
			if v == ':' {
				out.WriteString(":")
				continue
			}
			out.WriteString(space + string(v))
		case int:
			out.WriteString(space + strconv.Itoa(v))
		case float64:
			out.WriteString(space + strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			out.WriteString(space + strconv.FormatBool(v))
		case error:
			out.WriteString(space + v.Error())
		default:
			out.WriteString(space + "error not supported arg number: " + strconv.Itoa(argNumber))
		}
		space = " "
	}

	return &chartError{
		kind:    kind,
		message: out.String(),
	}
}
