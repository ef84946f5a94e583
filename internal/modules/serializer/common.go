package serializer

import (
	"fmt"
	"net/http"
)

// Response is the envelope of every endpoint. Failures carry only Message.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

// UploadResponse adds the stored file URLs the admin forms read back.
type UploadResponse struct {
	Response
	URLs []string `json:"urls"`
}

// OK
func OK(msg string, data interface{}) Response {
	return Response{Success: true, Message: msg, Data: data}
}

// List always renders an array, never null.
func List[T any](items []T) Response {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	return Response{Success: true, Data: items, Count: &n}
}

// Fail
func Fail(msg string) Response {
	return Response{Success: false, Message: msg}
}

// ParamErr
func ParamErr(err error) Response {
	return Fail(err.Error())
}

// NotFound
func NotFound(resource string) Response {
	return Fail(fmt.Sprintf("%s not found", resource))
}

// DBErr passes the store's message through; this is an internal admin API.
func DBErr(err error) Response {
	if err == nil {
		return Fail(http.StatusText(http.StatusInternalServerError))
	}
	return Fail(err.Error())
}

// AuthErr
func AuthErr(msg string) Response {
	if msg == "" {
		msg = "authentication error"
	}
	return Fail(msg)
}
