package dnsimple

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

var timeType = reflect.TypeOf(time.Time{})

// timeHook parses API timestamps. Strings in other layouts are left for
// mapstructure to reject.
func timeHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != timeType {
		return data, nil
	}
	s := reflect.ValueOf(data).String()
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05 MST", time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return data, nil
}

// decode copies a parsed JSON value into out, matching fields by their json
// tag. Unknown fields are ignored.
func decode(in any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       timeHook,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(in); err != nil {
		return ErrUnexpectedResponse.Err(err)
	}
	return nil
}

// unwrapOne decodes the object stored under key, as in {"domain": {...}}.
func unwrapOne[T any](data any, key string) (*T, error) {
	obj, ok := data.(map[string]any)
	if !ok {
		return nil, ErrUnexpectedResponse.Msg("expected an object with " + key)
	}
	inner, ok := obj[key]
	if !ok || inner == nil {
		return nil, ErrUnexpectedResponse.Msg("missing " + key)
	}
	var out T
	if err := decode(inner, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// unwrapList decodes a list of envelopes, as in [{"domain": {...}}, ...].
func unwrapList[T any](data any, key string) ([]T, error) {
	if data == nil {
		return []T{}, nil
	}
	items, ok := data.([]any)
	if !ok {
		return nil, ErrUnexpectedResponse.Msg("expected a list of " + key)
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		v, err := unwrapOne[T](item, key)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

// plain decodes a value that is not wrapped in an envelope.
func plain[T any](data any) (*T, error) {
	var out T
	if err := decode(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
