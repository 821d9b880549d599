package handlers

import (
	"errors"
	"net/http"
)

type Handler func(http.ResponseWriter, *http.Request) Result

type Result struct {
	Error error
	Code  int
	Body  interface{}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CreatedResponse struct {
	ID interface{} `json:"id"`
}

func BadRequest(message string) Result {
	return Result{
		Code: http.StatusBadRequest,
		Body: ErrorResponse{message},
	}
}

func InternalError(error error, message string) Result {
	return Result{
		Error: errors.Join(errors.New(message), error),
		Code:  http.StatusInternalServerError,
	}
}

func ServiceUnavailable(message string) Result {
	return Result{
		Code: http.StatusServiceUnavailable,
		Body: ErrorResponse{message},
	}
}

func Ok(body interface{}) Result {
	return Result{
		Code: http.StatusOK,
		Body: body,
	}
}

func Created(id interface{}) Result {
	return Result{
		Code: http.StatusCreated,
		Body: CreatedResponse{id},
	}
}

// Written marks a response the handler already wrote to the ResponseWriter
// itself (non-JSON payloads such as exports). The wrapper logs the code but
// writes nothing further.
func Written(code int) Result {
	return Result{Code: code, Body: nil, Error: errAlreadyWritten}
}

var errAlreadyWritten = errors.New("response already written")

func IsWritten(res Result) bool {
	return errors.Is(res.Error, errAlreadyWritten)
}
