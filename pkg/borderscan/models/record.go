// Package models defines data structures produced by table extraction.
package models

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v2"
)

// Field is a single key/value pair of a Record.
type Field struct {
	Key   string
	Value string
}

// Record is a string-keyed mapping that remembers first-insertion order.
// Setting an existing key replaces its value in place.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord builds a Record from alternating keys and values.
func NewRecord(kv ...string) Record {
	var r Record
	for i := 0; i+1 < len(kv); i += 2 {
		r.Set(kv[i], kv[i+1])
	}
	return r
}

// Set stores value under key.
func (r *Record) Set(key, value string) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[key]; ok {
		r.fields[i].Value = value
		return
	}
	r.index[key] = len(r.fields)
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

// Get returns the value stored under key.
func (r Record) Get(key string) (string, bool) {
	i, ok := r.index[key]
	if !ok {
		return "", false
	}
	return r.fields[i].Value, true
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// Keys returns the keys in insertion order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns a copy of the fields in insertion order.
func (r Record) Fields() []Field {
	return append([]Field(nil), r.fields...)
}

// Map returns the record as a plain map.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.fields))
	for _, f := range r.fields {
		m[f.Key] = f.Value
	}
	return m
}

// Compact returns a copy without the pairs whose key and value are both empty.
func (r Record) Compact() Record {
	var out Record
	for _, f := range r.fields {
		if f.Key == "" && f.Value == "" {
			continue
		}
		out.Set(f.Key, f.Value)
	}
	return out
}

// MarshalJSON encodes the record as a JSON object in insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONPair(&buf, f.Key, f.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as an ordered YAML mapping.
func (r Record) MarshalYAML() (interface{}, error) {
	ms := make(yaml.MapSlice, 0, len(r.fields))
	for _, f := range r.fields {
		ms = append(ms, yaml.MapItem{Key: f.Key, Value: f.Value})
	}
	return ms, nil
}

func writeJSONPair(buf *bytes.Buffer, key string, value interface{}) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}
