// Package headerdecoder converts untyped key/value mappings supplied by an
// embedded script runtime into validated net/http header collections.
//
// Header sets handed across a script boundary arrive as dynamically typed
// values: possibly absent, possibly the wrong shape, possibly carrying
// non-string entries or byte sequences that are not legal in an HTTP header.
// This package performs the full presence, type, and grammar check in a single
// pass and either returns a collection every consumer can trust, or a typed
// error naming the offending entry.
//
// # Basic Usage
//
//	headers, err := headerdecoder.Decode(dict)
//	if err != nil {
//		// *DecodeError carrying the offending key
//	}
//	if headers == nil {
//		// no headers were supplied
//	}
//
// # Decode Semantics
//
//   - A nil value or starlark.None means no headers were supplied and decodes
//     to a nil header with no error.
//   - Anything that is not a mapping fails with a type error.
//   - Keys are enumerated once up front; a key that enumerates but does not
//     resolve on lookup is skipped.
//   - Non-string values fail with a type error; names and values that break
//     the HTTP field grammar fail with invalid-name and invalid-value errors.
//   - When two keys collapse to the same header name, the later entry wins.
//
// # Configuration
//
// Optional length limits and debug logging are configured via Config, the
// fluent Builder, or JSON/YAML files:
//
//	decoder := headerdecoder.NewBuilder().
//		MaxValueLength(8192).
//		Debug(true).
//		Build()
//
// # gRPC Integration
//
// Decoded collections can cross into the gRPC world: ToMetadata and
// DecodeMetadata bridge http.Header and metadata.MD, and MetadataAnnotator /
// ResponseModifier plug a decoded set into a grpc-gateway ServeMux. Decode
// errors implement GRPCStatus and surface as InvalidArgument.
package headerdecoder
