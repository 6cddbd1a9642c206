package greeting

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

const (
	// SuccessMessage is the response of a successful greeting.
	SuccessMessage = "hello"
	// ErrorMessage is the response of a failed greeting.
	ErrorMessage = "error"
	// FailureName triggers a simulated failure.
	FailureName = "userfail"

	// StatusSuccess is the deliberately non-standard success status.
	StatusSuccess = 250
	// StatusFailure is returned for every failed greeting.
	StatusFailure = fiber.StatusBadRequest
)

// ErrUserTriggered is the simulated failure caused by FailureName.
var ErrUserTriggered = errors.New("user triggered failure")

// Response is the JSON body of every greeting response.
type Response struct {
	Response string `json:"response"`
}

// Outcome is the status and body produced for a single request.
type Outcome struct {
	Status int
	Body   Response
}

// SayHello validates name and returns the greeting.
func SayHello(name string) (string, error) {
	if name == FailureName {
		return "", ErrUserTriggered
	}
	return SuccessMessage, nil
}

// Succeeded builds the outcome of a successful greeting.
func Succeeded(msg string) Outcome {
	return Outcome{Status: StatusSuccess, Body: Response{Response: msg}}
}

// Failed builds the outcome of a failed greeting. The error never reaches
// the body.
func Failed() Outcome {
	return Outcome{Status: StatusFailure, Body: Response{Response: ErrorMessage}}
}

// Respond maps a name straight to its outcome.
func Respond(name string) Outcome {
	msg, err := SayHello(name)
	if err != nil {
		return Failed()
	}
	return Succeeded(msg)
}
