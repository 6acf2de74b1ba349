// Package proto holds the wire contract. Stubs are generated into gen/proto.
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative invoicerd/v1/invoicerd.proto
