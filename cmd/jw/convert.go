package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/jsonwire/jsonwire-go/stream"
)

// convert reads YAML documents from r and writes each one as a JSON
// document to w, newline-terminated. Each document gets a fresh
// encoder: a JSON document has exactly one top-level value.
func convert(w io.Writer, r io.Reader, opts ...stream.Option) error {
	dec := yaml.NewDecoder(r, yaml.UseOrderedMap())
	for {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("error decoding yaml: %w", err)
		}
		enc := stream.NewEncoder(w, opts...)
		if err := emit(enc, doc); err != nil {
			enc.Close()
			return err
		}
		if err := enc.Newline(); err != nil {
			enc.Close()
			return err
		}
		enc.Close()
	}
}

// emit walks a decoded YAML value and streams it through enc.
func emit(enc *stream.Encoder, v any) error {
	switch t := v.(type) {
	case nil:
		return enc.WriteNull()
	case bool:
		return enc.WriteBool(t)
	case string:
		return enc.WriteString(t)
	case int:
		return enc.WriteInt(int64(t))
	case int64:
		return enc.WriteInt(t)
	case uint64:
		return enc.WriteUint(t)
	case float32:
		return enc.WriteFloat32(t)
	case float64:
		return enc.WriteFloat64(t)
	case []any:
		if err := enc.BeginArray(); err != nil {
			return err
		}
		for _, el := range t {
			if err := emit(enc, el); err != nil {
				return err
			}
		}
		return enc.EndArray()
	case yaml.MapSlice:
		if err := enc.BeginObject(); err != nil {
			return err
		}
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			if err := enc.WriteKey(key); err != nil {
				return err
			}
			if err := emit(enc, item.Value); err != nil {
				return err
			}
		}
		return enc.EndObject()
	case map[string]any:
		// not produced with ordered decoding, but cheap to accept
		if err := enc.BeginObject(); err != nil {
			return err
		}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := enc.WriteKey(k); err != nil {
				return err
			}
			if err := emit(enc, t[k]); err != nil {
				return err
			}
		}
		return enc.EndObject()
	default:
		return fmt.Errorf("cannot encode %T as json", v)
	}
}
