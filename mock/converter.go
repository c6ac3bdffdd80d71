package mock

import "github.com/fwojciec/provinv"

var _ provinv.Converter = (*Converter)(nil)

// Converter is a mock implementation of provinv.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
