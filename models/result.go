// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Result codes carried in the "code" field of every response envelope.
const (
	// CodeError marks a failed operation. The reason is in Msg.
	CodeError = 0
	// CodeSuccess marks a successful operation.
	CodeSuccess = 1
)

// Result is the uniform envelope returned by every admin API endpoint.
//
// Clients only look at Code to decide whether the call succeeded: business
// failures are delivered with HTTP 200 and Code set to [CodeError].
//
// JSON shape:
//
//	{"code": 1, "msg": null, "data": {...}}
type Result struct {
	// Code is CodeSuccess (1) or CodeError (0).
	Code int `json:"code"`

	// Msg is a human-readable error message. It is null on success.
	Msg *string `json:"msg"`

	// Data is the operation payload. It is null for operations without one
	// and for errors.
	Data any `json:"data"`
}

// Success wraps data into a successful envelope. Passing nil produces
// {"code":1,"msg":null,"data":null}.
func Success(data any) Result {
	return Result{Code: CodeSuccess, Data: data}
}

// Error builds an error envelope with the given message.
func Error(msg string) Result {
	return Result{Code: CodeError, Msg: &msg}
}

// IsSuccess reports whether the envelope carries a successful result.
func (r Result) IsSuccess() bool {
	return r.Code == CodeSuccess
}

// Message returns Msg or an empty string when it is not set.
func (r Result) Message() string {
	if r.Msg == nil {
		return ""
	}
	return *r.Msg
}
