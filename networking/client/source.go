package client

import (
	"errors"
	"fmt"

	"github.com/fernandosanchezjr/fastrng/networking/services"
)

var ErrShortFill = errors.New("entropy server returned a short fill")

// Source draws bytes from a remote Entropy service. Transport and server
// failures surface through TryFillBytes.
type Source struct {
	client *Client
}

func NewSource(cl *Client) *Source {
	return &Source{client: cl}
}

func (s *Source) TryFillBytes(buf []byte) error {
	for len(buf) > 0 {
		n := len(buf)
		if n > services.MaxFill {
			n = services.MaxFill
		}
		result, err := s.client.Call(services.EntropyService, "Fill", n)
		if err != nil {
			return err
		}
		data, ok := result.([]byte)
		if !ok || len(data) != n {
			return fmt.Errorf("%w: wanted %d bytes", ErrShortFill, n)
		}
		copy(buf, data)
		buf = buf[n:]
	}
	return nil
}
