package headerdecoder

import (
	"fmt"
	"net/http"

	"go.starlark.net/starlark"
	"golang.org/x/net/http/httpguts"
)

// Logger interface for logging (can be implemented by any logger)
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
}

// NoOpLogger is a no-operation logger
type NoOpLogger struct{}

func (n NoOpLogger) Debug(args ...interface{}) {}
func (n NoOpLogger) Info(args ...interface{})  {}
func (n NoOpLogger) Warn(args ...interface{})  {}
func (n NoOpLogger) Error(args ...interface{}) {}

// Decoder converts untyped script values into validated header collections
type Decoder struct {
	config *Config
	logger Logger
}

// NewDecoder creates a new Decoder with the given configuration
func NewDecoder(config *Config) *Decoder {
	if config == nil {
		config = &Config{}
	}

	return &Decoder{
		config: config,
		logger: NoOpLogger{},
	}
}

// SetLogger sets a custom logger
func (d *Decoder) SetLogger(logger Logger) {
	d.logger = logger
}

var defaultDecoder = NewDecoder(nil)

// Decode converts val into a validated header collection using the default
// decoder. See Decoder.Decode.
func Decode(val starlark.Value) (http.Header, error) {
	return defaultDecoder.Decode(val)
}

// Decode converts an untyped value crossing the script boundary into a
// validated http.Header.
//
// A nil value and starlark.None both mean "no headers supplied" and return
// (nil, nil); these are the only inputs for which the returned header is nil
// without an error. Any other value must be a mapping whose keys and values
// are strings, each key a valid header name and each value a valid header
// value. The first malformed entry aborts the decode with a *DecodeError
// naming the offending key; no partial collection is ever returned.
//
// Keys are enumerated once up front in the mapping's own iteration order. A
// key that enumerates but then fails to resolve on lookup is skipped; foreign
// mappings are allowed to diverge between enumeration and lookup. When two
// keys map to the same header name (such as "X-Foo" and "x-foo"), the
// later-enumerated entry wins.
func (d *Decoder) Decode(val starlark.Value) (http.Header, error) {
	if val == nil || val == starlark.None {
		return nil, nil
	}

	mapping, ok := val.(starlark.IterableMapping)
	if !ok {
		return nil, typeError("", fmt.Sprintf("expected an object-shaped value, got %s", val.Type()))
	}

	keys := enumerateKeys(mapping)
	headers := make(http.Header, len(keys))

	for _, key := range keys {
		name, ok := key.(starlark.String)
		if !ok {
			return nil, typeError(key.String(), fmt.Sprintf("header name must be a string, got %s", key.Type()))
		}

		value, found, err := mapping.Get(key)
		if err != nil {
			return nil, typeError(string(name), fmt.Sprintf("failed to get value: %v", err))
		}
		if !found {
			// Enumerated but gone on lookup; tolerate and move on.
			continue
		}

		strVal, ok := value.(starlark.String)
		if !ok {
			return nil, typeError(string(name), fmt.Sprintf("header value must be a string, got %s", value.Type()))
		}

		if err := d.validateName(string(name)); err != nil {
			return nil, err
		}
		if err := d.validateValue(string(name), string(strVal)); err != nil {
			return nil, err
		}

		headers.Set(string(name), string(strVal))
	}

	if d.config.Debug {
		d.logger.Debug("decoded header map:", Redact(headers))
	}

	return headers, nil
}

// enumerateKeys snapshots the mapping's key set before any lookups happen
func enumerateKeys(mapping starlark.IterableMapping) []starlark.Value {
	iter := mapping.Iterate()
	defer iter.Done()

	var keys []starlark.Value
	var key starlark.Value
	for iter.Next(&key) {
		keys = append(keys, key)
	}
	return keys
}

func (d *Decoder) validateName(name string) error {
	if name == "" {
		return invalidName(name, "header name cannot be empty")
	}
	if !httpguts.ValidHeaderFieldName(name) {
		return invalidName(name, "header name contains disallowed characters")
	}
	if max := d.config.MaxNameLength; max > 0 && len(name) > max {
		return invalidName(name, fmt.Sprintf("header name exceeds %d bytes", max))
	}
	return nil
}

func (d *Decoder) validateValue(name, value string) error {
	if !httpguts.ValidHeaderFieldValue(value) {
		return invalidValue(name, "header value contains disallowed characters")
	}
	if max := d.config.MaxValueLength; max > 0 && len(value) > max {
		return invalidValue(name, fmt.Sprintf("header value exceeds %d bytes", max))
	}
	return nil
}
