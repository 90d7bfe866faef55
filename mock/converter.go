package mock

import "github.com/fwojciec/pagekit"

var _ pagekit.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagekit.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
