// Package rpc is the wire layer between the web tiers and the three
// backing services. Service descriptors and method handlers are maintained
// by hand in the shape protoc-gen-go-grpc emits, so the usual grpc
// machinery (interceptors, status codes, metadata) works unchanged, while
// messages are plain Go structs carried by a registered JSON codec.
// Optional request fields are pointers: nil means "no constraint".
package rpc

import (
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
)

// CodecName is the grpc content-subtype carried by every call
// (Content-Type: application/grpc+json).
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (jsonCodec) Name() string { return CodecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// callOpts prepends the JSON content-subtype so callers can still append
// their own options.
func callOpts(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

// Dial opens a client connection to one of the blog services. Transport is
// plaintext: the services only listen on the internal network.
func Dial(target string) (*grpc.ClientConn, error) {
	return grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
}
