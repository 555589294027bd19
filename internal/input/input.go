// Package input reads keyboard bytes from a raw-mode terminal without
// blocking the frame loop.
package input

import "bufio"

// Input represents the keys pressed since the previous frame.
type Input struct {
	Quit        bool
	Pause       bool
	Reset       bool
	Gravity     bool // Toggle gravity
	Spawn       bool // Add one body
	BouncierKey bool // Raise restitution
	SofterKey   bool // Lower restitution
}

// Stream delivers input bytes via a channel so the frame loop can drain
// whatever arrived without waiting.
type Stream struct {
	ch chan byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to
// the stream. The channel closes when the reader fails (disconnect).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking)
// and reports which controls were pressed. A closed stream reads as
// Quit so a dropped connection ends the loop.
func ReadInput(s *Stream) Input {
	var in Input
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				in.Quit = true
				return in
			}
			applyByte(&in, b)
		default:
			return in
		}
	}
}

func applyByte(in *Input, b byte) {
	switch b {
	case 'q', 'Q', '\x03': // ctrl-c
		in.Quit = true
	case 'p', 'P':
		in.Pause = true
	case 'r', 'R':
		in.Reset = true
	case 'g', 'G':
		in.Gravity = true
	case ' ':
		in.Spawn = true
	case '+', '=':
		in.BouncierKey = true
	case '-', '_':
		in.SofterKey = true
	}
}
