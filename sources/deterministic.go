package sources

// Counter writes 0, 1, 2, ... wrapping at 256.
type Counter struct {
	Next byte
}

func (c *Counter) TryFillBytes(buf []byte) error {
	for i := range buf {
		buf[i] = c.Next
		c.Next++
	}
	return nil
}

// PatternSource repeats a fixed byte pattern forever.
type PatternSource struct {
	pattern []byte
	pos     int
}

func Pattern(pattern ...byte) *PatternSource {
	if len(pattern) == 0 {
		pattern = []byte{0}
	}
	return &PatternSource{pattern: pattern}
}

func (p *PatternSource) TryFillBytes(buf []byte) error {
	for i := range buf {
		buf[i] = p.pattern[p.pos]
		p.pos = (p.pos + 1) % len(p.pattern)
	}
	return nil
}

// FailingSource always fails with Err.
type FailingSource struct {
	Err error
}

func Failing(err error) *FailingSource {
	return &FailingSource{Err: err}
}

func (f *FailingSource) TryFillBytes([]byte) error {
	return f.Err
}
