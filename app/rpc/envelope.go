// Package rpc holds the wire format shared by the procedure handlers and
// the client gateway.
package rpc

// PathPrefix is where procedures are mounted.
const PathPrefix = "/api/rpc"

// Procedure names.
const (
	PostAll    = "post.all"
	PostCreate = "post.create"
	PostRemove = "post.remove"
)

// Error codes carried in ErrorBody.Code.
const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternal         = "INTERNAL"
)

// Result wraps the data of a successful call: {"result":{"data":...}}.
type Result[T any] struct {
	Result struct {
		Data T `json:"data"`
	} `json:"result"`
}

// NewResult builds a success envelope around data.
func NewResult[T any](data T) Result[T] {
	var r Result[T]
	r.Result.Data = data
	return r
}

// ErrorBody is the error half of the envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is {"error":{"code":...,"message":...}}.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ProcedurePath returns the URL path of a procedure.
func ProcedurePath(procedure string) string {
	return PathPrefix + "/" + procedure
}
