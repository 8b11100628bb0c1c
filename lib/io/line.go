package io

import (
	"bufio"
	"io"
	"strings"
)

const endLine = '\n'

// LinePipe binds reader and writer to c. Each line from reader is
// trimmed and delivered on c's read channel, empty lines included.
// Text written to c is passed to writer verbatim and flushed per
// message, so prompts without a trailing newline show up immediately.
//
// LinePipe returns after c is closed and drained, or on the first
// write error. A read error other than io.EOF is reported if one
// happened by then.
func LinePipe(reader io.Reader, writer io.Writer, c Conn) error {
	rerr := make(chan error, 1)

	go func() {
		defer close(c.rd)

		reader := bufio.NewReader(reader)
		for {
			str, err := reader.ReadString(endLine)
			if err != nil && (err != io.EOF || str == "") {
				if err != io.EOF {
					rerr <- err
				}
				return
			}
			c.rd <- strings.TrimSpace(str)
		}
	}()

	w := bufio.NewWriter(writer)
	for msg := range c.wr {
		if _, err := w.WriteString(msg); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	select {
	case err := <-rerr:
		return err
	default:
		return nil
	}
}
