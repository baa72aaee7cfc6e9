// Package v1 holds the protobuf messages and gRPC bindings of the
// introscorer.v1.TranscriptScoring service.
package v1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative scoring.proto

// ServiceName is the fully qualified service name, also used for health
// reporting.
const ServiceName = "introscorer.v1.TranscriptScoring"
