// Package errkind centralizes the three behavioral error kinds the
// evaluation core produces (see spec's error-handling design): a generic
// render-time failure, a parse-time arity failure surfaced by the node
// builder, and a transparent wrapper around whatever a filter or function
// handle returned.
//
// Every evaluation failure in the eval package is constructed here, the
// same way chtml/err.go centralizes ComponentError construction instead of
// calling fmt.Errorf ad hoc throughout the renderer.
package errkind

import (
	xgxerror "github.com/xgx-io/xgx-error"
)

// Codes classify the three behavioral error kinds.
const (
	CodeRenderFailure   xgxerror.Code = "render_failure"
	CodeParseFailure    xgxerror.Code = "parse_failure"
	CodeExternalFailure xgxerror.Code = "external_failure"
)

// RenderFailure builds a generic render-time error: type mismatches, bad
// arities discovered at run time, assignment through incompatible paths,
// non-boolean if-conditions.
func RenderFailure(msg string, kv ...any) xgxerror.Error {
	return xgxerror.New(msg, kv...).Code(CodeRenderFailure)
}

// ParseFailure builds an arity/shape error raised by the node builder
// (standing in for the parser) before an Operation node is constructed.
func ParseFailure(msg string, kv ...any) xgxerror.Error {
	return xgxerror.New(msg, kv...).Code(CodeParseFailure)
}

// ExternalFailure wraps an error returned by a filter or function handle
// transparently, preserving the original error as the cause.
func ExternalFailure(err error) xgxerror.Error {
	return xgxerror.Wrap(err, "external handle failed").Code(CodeExternalFailure)
}

// IsRenderFailure, IsParseFailure, and IsExternalFailure classify an error
// previously produced by this package.
func IsRenderFailure(err error) bool   { return xgxerror.HasCode(err, CodeRenderFailure) }
func IsParseFailure(err error) bool    { return xgxerror.HasCode(err, CodeParseFailure) }
func IsExternalFailure(err error) bool { return xgxerror.HasCode(err, CodeExternalFailure) }
