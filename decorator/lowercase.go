package decorator

import "io"

// LowerCaseReader decorates an io.Reader, lowercasing ASCII letters as they
// stream through. It is the same shape as the beverage decorators: same
// interface in, same interface out, one extra behavior layered on top.
// Non-ASCII bytes pass through untouched.
type LowerCaseReader struct {
	r io.Reader
}

// NewLowerCaseReader wraps r. Panics if r is nil.
func NewLowerCaseReader(r io.Reader) *LowerCaseReader {
	if r == nil {
		panic("decorator: cannot wrap a nil reader")
	}
	return &LowerCaseReader{r: r}
}

// Read fills p from the wrapped reader, then folds 'A'..'Z' in place.
func (l *LowerCaseReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	for i := 0; i < n; i++ {
		if p[i] >= 'A' && p[i] <= 'Z' {
			p[i] += 'a' - 'A'
		}
	}
	return n, err
}
