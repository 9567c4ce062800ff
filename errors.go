package main

import (
	"errors"
	"fmt"
)

var (
	// ErrEndOfProgram is the normal end of a run: input has been exhausted,
	// and every scanned token has been evaluated.
	ErrEndOfProgram = errors.New("end of program")

	// ErrStackUnderflow is wrapped by every error caused by an operation
	// finding too few operands on the parameter stack.
	ErrStackUnderflow = errors.New("parameter stack underflow")

	// ErrStackOverflow happens when a push would exceed a configured stack
	// limit.
	ErrStackOverflow = errors.New("parameter stack overflow")

	// ErrDivideByZero happens on / or % by zero.
	ErrDivideByZero = errors.New("division by zero")

	// ErrNoLoop happens when UNTIL is evaluated outside of any DO loop.
	ErrNoLoop = errors.New("without DO")

	// ErrAlreadyRan is returned by any Run after the first.
	ErrAlreadyRan = errors.New("interpreter has already run")
)

type underflowError struct {
	op   string
	need int
	have int
}

func (err underflowError) Error() string {
	return fmt.Sprintf("insufficient operands for %v: need %v, have %v", err.op, err.need, err.have)
}

func (err underflowError) Unwrap() error { return ErrStackUnderflow }

type opError struct {
	op  string
	err error
}

func (err opError) Error() string { return fmt.Sprintf("%v: %v", err.op, err.err) }
func (err opError) Unwrap() error { return err.err }
