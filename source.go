package main

import "io"

// LineReader provides raw input lines to the interpreter. ReadLine returns
// io.EOF once input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// tokenSource owns the queue of tokens scanned from input but not yet
// evaluated, and a stack of recordings used to replay loop bodies.
//
// While any recording is active, every token handed out by next is also
// appended to the innermost recording.
type tokenSource struct {
	readLine func() (string, error)
	logf     func(mark, mess string, args ...interface{})

	pending    []Token
	recordings [][]Token
}

// fill tokenizes input lines into the pending queue until a blank line or
// the end of input; it returns false only once input has been exhausted.
func (src *tokenSource) fill() (more bool, _ error) {
	for {
		line, err := src.readLine()
		if err == io.EOF {
			return false, nil
		} else if err != nil {
			return false, err
		}
		if line == "" {
			return true, nil
		}
		n := len(src.pending)
		src.pending = tokenize(src.pending, line)
		src.trace("<", "scan %q -> %v", line, src.pending[n:])
	}
}

// next returns the next pending token, reading more input as necessary.
// Returns ErrEndOfProgram once both input and the pending queue are empty.
func (src *tokenSource) next() (Token, error) {
	for more := true; more && len(src.pending) == 0; {
		var err error
		if more, err = src.fill(); err != nil {
			return Token{}, err
		}
	}
	if len(src.pending) == 0 {
		return Token{}, ErrEndOfProgram
	}

	tok := src.pending[0]
	src.pending[0] = Token{}
	src.pending = src.pending[1:]
	if i := len(src.recordings) - 1; i >= 0 {
		src.recordings[i] = append(src.recordings[i], tok)
	}
	return tok, nil
}

func (src *tokenSource) recording() bool { return len(src.recordings) > 0 }

// startRecording begins a new, innermost, recording.
func (src *tokenSource) startRecording() {
	src.recordings = append(src.recordings, nil)
	src.trace("@", "record[%v]", len(src.recordings)-1)
}

// rewind moves the innermost recording back onto the front of the pending
// queue, so that it will be handed out (and recorded) again.
func (src *tokenSource) rewind() {
	i := len(src.recordings) - 1
	rec := src.recordings[i]
	src.recordings[i] = nil
	src.trace("@", "rewind[%v] %v", i, rec)
	src.unread(rec...)
}

// stopRecording ends the innermost recording. Since only the innermost
// recording collects tokens, what it holds is appended to its parent, if
// any, so that the parent still contains the complete token sequence.
func (src *tokenSource) stopRecording() {
	i := len(src.recordings) - 1
	rec := src.recordings[i]
	src.recordings[i] = nil
	src.recordings = src.recordings[:i]
	if i > 0 {
		src.recordings[i-1] = append(src.recordings[i-1], rec...)
	}
	src.trace("@", "stop[%v]", i)
}

// unread pushes tokens onto the front of the pending queue, preserving their
// order.
func (src *tokenSource) unread(toks ...Token) {
	if len(toks) == 0 {
		return
	}
	pending := make([]Token, 0, len(toks)+len(src.pending))
	pending = append(pending, toks...)
	src.pending = append(pending, src.pending...)
}

func (src *tokenSource) trace(mark, mess string, args ...interface{}) {
	if src.logf != nil {
		src.logf(mark, mess, args...)
	}
}
