package fileinput

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer holding its text.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il *Line) String() string     { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential line reading through a Queue of one or more
// input streams. Both the line being scanned and the last complete line are
// tracked to facilitate user feedback.
type Input struct {
	cur   io.Reader
	br    *bufio.Reader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// ReadLine returns the next line from the current input stream, without its
// line terminator; a trailing carriage return is dropped as well. Line bytes
// are returned as read, valid UTF-8 or not.
//
// The final line of a stream is returned even if it lacks a line feed, and
// never runs together with the first line of the next stream. Once every
// queued stream has been exhausted, io.EOF is returned.
func (in *Input) ReadLine() (string, error) {
	for in.br != nil || in.nextIn() {
		b, err := in.br.ReadSlice('\n')
		in.Scan.Write(b)
		switch err {
		case nil:
			return in.nextLine(), nil

		case bufio.ErrBufferFull:

		case io.EOF:
			partial := in.Scan.Len() > 0
			var line string
			if partial {
				line = in.nextLine()
			}
			in.closeIn()
			if partial {
				return line, nil
			}

		default:
			return "", err
		}
	}
	return "", io.EOF
}

func (in *Input) nextLine() string {
	b := bytes.TrimSuffix(in.Scan.Bytes(), []byte{'\n'})
	b = bytes.TrimSuffix(b, []byte{'\r'})
	in.Last.Reset()
	in.Last.Location = in.Scan.Location
	in.Last.Write(b)
	in.Scan.Reset()
	in.Scan.Line++
	return in.Last.Buffer.String()
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur = nil
	in.br = nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.cur = r
		in.br = bufio.NewReader(r)
		in.Scan.Reset()
		in.Scan.Name = nameOf(r)
		in.Scan.Line = 1
	}
	return in.br != nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
