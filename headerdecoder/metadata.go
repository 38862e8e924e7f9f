package headerdecoder

import (
	"context"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/proto"
)

// ToMetadata converts a validated header collection into gRPC metadata.
// Metadata keys are lowercased by metadata.Set.
func ToMetadata(headers http.Header) metadata.MD {
	md := metadata.New(map[string]string{})
	for name, values := range headers {
		md.Set(name, values...)
	}
	return md
}

// DecodeMetadata re-validates a gRPC metadata map into a header collection,
// applying the same grammar checks and error taxonomy as Decode. A nil map
// returns (nil, nil).
func (d *Decoder) DecodeMetadata(md metadata.MD) (http.Header, error) {
	if md == nil {
		return nil, nil
	}

	headers := make(http.Header, len(md))
	for name, values := range md {
		if err := d.validateName(name); err != nil {
			return nil, err
		}
		for _, value := range values {
			if err := d.validateValue(name, value); err != nil {
				return nil, err
			}
			headers.Add(name, value)
		}
	}
	return headers, nil
}

// MetadataAnnotator creates a grpc-gateway metadata annotator that attaches
// the given decoded header set to every incoming request
func (d *Decoder) MetadataAnnotator(headers http.Header) func(context.Context, *http.Request) metadata.MD {
	return func(ctx context.Context, req *http.Request) metadata.MD {
		md := ToMetadata(headers)

		if d.config.Debug {
			d.logger.Debug("annotated request metadata for", req.URL.Path)
		}

		return md
	}
}

// ResponseModifier creates a grpc-gateway forward-response option that applies
// the given decoded header set to outgoing responses
func (d *Decoder) ResponseModifier(headers http.Header) func(context.Context, http.ResponseWriter, proto.Message) error {
	return func(ctx context.Context, w http.ResponseWriter, msg proto.Message) error {
		for name, values := range headers {
			for _, value := range values {
				w.Header().Set(name, value)
			}
		}

		if d.config.Debug {
			d.logger.Debug("applied decoded headers to response")
		}

		return nil
	}
}

// CreateGatewayMux creates a new gRPC gateway ServeMux that carries the
// decoded header set on requests and responses
func CreateGatewayMux(decoder *Decoder, headers http.Header, opts ...runtime.ServeMuxOption) *runtime.ServeMux {
	// Prepend our options
	allOpts := []runtime.ServeMuxOption{
		runtime.WithMetadata(decoder.MetadataAnnotator(headers)),
		runtime.WithForwardResponseOption(decoder.ResponseModifier(headers)),
	}

	// Add user-provided options
	allOpts = append(allOpts, opts...)

	return runtime.NewServeMux(allOpts...)
}
