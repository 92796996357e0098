// Package errors provides examples of structured error handling in DocBridge.
package errors_test

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/docbridge/docbridge/pkg/errors"
)

// Example demonstrates basic error creation and wrapping.
func Example() {
	// Create a new error with type
	err := errors.New(errors.ErrorTypeConfig, "engine.objectStore may not be empty")

	// Add context details
	err = err.WithDetail("key", "engine.objectStore")

	// Print the error
	fmt.Println(err.Error())

	// Output:
	// config: engine.objectStore may not be empty
}

// ExampleWrap shows how to wrap existing errors with context.
func ExampleWrap() {
	// Simulate an underlying error
	originalErr := io.EOF

	// Wrap the error with context
	err := errors.Wrap(originalErr, errors.ErrorTypeConnection, "failed to read engine response").
		WithDetail("host", "ce.example.com")

	// Check the error type
	if errors.IsType(err, errors.ErrorTypeConnection) {
		fmt.Println("This is a connection error")
	}

	// Access the original error using Go's standard errors.Is
	if stderrors.Is(err, io.EOF) {
		fmt.Println("Original error was EOF")
	}

	// Output:
	// This is a connection error
	// Original error was EOF
}

// ExampleIsType demonstrates checking error types through wrap chains.
func ExampleIsType() {
	// Registry reports the missing factory, the loader wraps it
	notFound := errors.New(errors.ErrorTypeNotFound, "object factory acme not registered")
	wrapped := errors.Wrap(notFound, errors.ErrorTypeConfig, "unable to instantiate object factory: acme")

	fmt.Printf("Wrapped error is config type: %v\n", errors.IsType(wrapped, errors.ErrorTypeConfig))
	fmt.Printf("Wrapped error is not_found type: %v\n", errors.IsType(wrapped, errors.ErrorTypeNotFound))
	fmt.Println(wrapped)

	// Output:
	// Wrapped error is config type: true
	// Wrapped error is not_found type: false
	// config: unable to instantiate object factory: acme: not_found: object factory acme not registered
}

// ExampleIsRetryable shows how to check if an error is retryable.
func ExampleIsRetryable() {
	tempErr := errors.New(errors.ErrorTypeTimeout, "engine host did not answer")
	fatalErr := errors.New(errors.ErrorTypeConfig, "invalid feed.maxUrls value: abc")

	if errors.IsRetryable(tempErr) {
		fmt.Println("Timeout error is retryable")
	}

	if !errors.IsRetryable(fatalErr) {
		fmt.Println("Config error is not retryable")
	}

	// Output:
	// Timeout error is retryable
	// Config error is not retryable
}

// Example_errorChain shows how to chain multiple error contexts.
func Example_errorChain() {
	err := decodePassword()
	if err != nil {
		err = errors.Wrap(err, errors.ErrorTypeConnection, "failed to open engine connection").
			WithDetail("username", "indexer")

		fmt.Println("Full error chain:", err)
	}

	// Output:
	// Full error chain: connection: failed to open engine connection: validation: ciphertext is not base64
}

// decodePassword simulates a sensitive-value decoder failure
func decodePassword() error {
	return errors.New(errors.ErrorTypeValidation, "ciphertext is not base64")
}
