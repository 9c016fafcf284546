package pattern

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"

	apperrors "github.com/agbru/snippets/internal/errors"
	"github.com/go-viper/mapstructure/v2"
)

// TagName is the struct tag that binds a field to a capture group.
const TagName = "pattern"

// ErrNoMatch is the cause of a ParseError when input does not match the
// pattern at all.
var ErrNoMatch = errors.New("input does not match pattern")

// Decoder turns strings matching one regular expression into values of T.
type Decoder[T any] struct {
	re     *regexp.Regexp
	groups []string
}

// Compile builds a Decoder from expr, which must contain at least one named
// capture group.
func Compile[T any](expr string) (*Decoder[T], error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile pattern: %w", err)
	}
	var groups []string
	for _, name := range re.SubexpNames() {
		if name != "" {
			groups = append(groups, name)
		}
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("pattern %q has no named groups", expr)
	}
	return &Decoder[T]{re: re, groups: groups}, nil
}

// MustCompile is like Compile but panics on error. It is meant for
// package-level decoders built from constant expressions.
func MustCompile[T any](expr string) *Decoder[T] {
	d, err := Compile[T](expr)
	if err != nil {
		panic(err)
	}
	return d
}

// Groups returns the named groups of the pattern, in order.
func (d *Decoder[T]) Groups() []string {
	return append([]string(nil), d.groups...)
}

// Decode matches s and converts the captures into a T. Failures are
// returned as apperrors.ParseError.
func (d *Decoder[T]) Decode(s string) (T, error) {
	var out T

	captures, ok := d.captures(s)
	if !ok {
		return out, apperrors.ParseError{Input: s, Cause: ErrNoMatch}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncType(decimalHook),
		Result:           &out,
	})
	if err != nil {
		return out, apperrors.ParseError{Input: s, Cause: err}
	}
	if err := dec.Decode(captures); err != nil {
		var zero T
		return zero, apperrors.ParseError{Input: s, Cause: err}
	}
	return out, nil
}

// MustDecode is like Decode but panics when s cannot be decoded.
func (d *Decoder[T]) MustDecode(s string) T {
	v, err := d.Decode(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (d *Decoder[T]) captures(s string) (map[string]any, bool) {
	m := d.re.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	out := make(map[string]any, len(d.groups))
	for i, name := range d.re.SubexpNames() {
		if name != "" {
			out[name] = m[i]
		}
	}
	return out, true
}

// decimalHook parses captured digits as base-10 integers. Weak decoding on
// its own would read a leading zero as an octal prefix.
func decimalHook(from, to reflect.Type, data any) (any, error) {
	s, ok := data.(string)
	if !ok || from.Kind() != reflect.String {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(s, 10, to.Bits())
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(v).Convert(to).Interface(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(s, 10, to.Bits())
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(v).Convert(to).Interface(), nil
	}
	return data, nil
}
