package charting

import (
	"errors"
	"fmt"
	"net/url"

	url2 "github.com/fernandosanchezjr/fastrng/backend/url"
)

const (
	MaxDraw = 1 << 16
	MaxBins = 1000
)

var ErrBadParams = errors.New("bad request parameters")

type ServiceParams struct {
	Kind    string
	Seed    uint64
	Seq     uint64
	N       int
	Bins    int
	Words   int
	Bytes   int
	Refresh bool
}

// ParseServiceParams reads query values over defaults.
func ParseServiceParams(values url.Values, defaults ServiceParams) (params *ServiceParams, err error) {
	params = &defaults
	url2.ParseString("kind", values, &params.Kind)
	if err = url2.ParseUint64("seed", values, &params.Seed); err != nil {
		return
	}
	if err = url2.ParseUint64("seq", values, &params.Seq); err != nil {
		return
	}
	if err = url2.ParseInt("n", values, &params.N); err != nil {
		return
	}
	if err = url2.ParseInt("bins", values, &params.Bins); err != nil {
		return
	}
	if err = url2.ParseInt("words", values, &params.Words); err != nil {
		return
	}
	if err = url2.ParseInt("bytes", values, &params.Bytes); err != nil {
		return
	}
	if err = url2.ParseBool("refresh", values, &params.Refresh); err != nil {
		return
	}
	err = params.validate()
	return
}

func (p *ServiceParams) validate() error {
	switch {
	case p.N < 0 || p.N > MaxDraw:
		return fmt.Errorf("%w: n must be within [0, %d]", ErrBadParams, MaxDraw)
	case p.Bins < 1 || p.Bins > MaxBins:
		return fmt.Errorf("%w: bins must be within [1, %d]", ErrBadParams, MaxBins)
	case p.Words < 0 || p.Words > MaxDraw:
		return fmt.Errorf("%w: words must be within [0, %d]", ErrBadParams, MaxDraw)
	case p.Bytes < 0 || p.Bytes > 64*MaxDraw:
		return fmt.Errorf("%w: bytes must be within [0, %d]", ErrBadParams, 64*MaxDraw)
	}
	return nil
}
