package booking

import (
	"fmt"
	"math"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// fields reads typed values out of a request Struct. Missing keys read as
// zero values; present keys of the wrong kind are InvalidArgument.
type fields map[string]*structpb.Value

func fieldsOf(s *structpb.Struct) fields {
	return fields(s.GetFields())
}

func invalid(format string, args ...interface{}) error {
	return status.Error(codes.InvalidArgument, fmt.Sprintf(format, args...))
}

func (f fields) has(key string) bool {
	v, ok := f[key]
	if !ok {
		return false
	}
	_, isNull := v.GetKind().(*structpb.Value_NullValue)
	return !isNull
}

func (f fields) str(key string) (string, error) {
	if !f.has(key) {
		return "", nil
	}
	s, ok := f[key].GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", invalid("%s must be a string", key)
	}
	return s.StringValue, nil
}

func (f fields) optStr(key string) (*string, error) {
	if !f.has(key) {
		return nil, nil
	}
	s, err := f.str(key)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (f fields) integer(key string) (int64, error) {
	if !f.has(key) {
		return 0, nil
	}
	n, ok := f[key].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, invalid("%s must be a number", key)
	}
	if n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > 1<<53 {
		return 0, invalid("%s must be an integer", key)
	}
	return int64(n.NumberValue), nil
}

func (f fields) boolean(key string) (bool, error) {
	if !f.has(key) {
		return false, nil
	}
	b, ok := f[key].GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, invalid("%s must be a boolean", key)
	}
	return b.BoolValue, nil
}

// timestamp parses an RFC 3339 string. Missing or empty yields nil.
func (f fields) timestamp(key string) (*time.Time, error) {
	s, err := f.str(key)
	if err != nil || s == "" {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, invalid("%s must be an RFC 3339 timestamp", key)
	}
	return &t, nil
}

// required reads a non-empty string.
func (f fields) required(key string) (string, error) {
	s, err := f.str(key)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", invalid("%s is required", key)
	}
	return s, nil
}
