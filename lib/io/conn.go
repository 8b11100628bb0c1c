package io

// Conn is a line oriented, bidirectional stream. Lines read from the
// far end arrive on Rc, text written to Wc is sent to the far end.
type Conn struct {
	rd chan string
	wr chan string
}

// Rc returns the read channel for this Conn. It is closed once the
// far end stops producing lines.
func (c Conn) Rc() <-chan string {
	return c.rd
}

// Wc returns the write channel for this Conn
func (c Conn) Wc() chan<- string {
	return c.wr
}

// Write is a convenience function for c.Wc() <- msg
func (c Conn) Write(msg string) {
	c.Wc() <- msg
}

// Close ends the write side. LinePipe returns once everything
// written before Close has been flushed.
func (c Conn) Close() {
	close(c.wr)
}

// NewConn creates a new Conn with the desired chan buffer size.
func NewConn(rSize, wSize int) Conn {
	return Conn{
		rd: make(chan string, rSize),
		wr: make(chan string, wSize),
	}
}
