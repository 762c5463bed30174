package token

type tokenOpts struct {
	legacyEscapes bool
}

type TokenOpt func(*tokenOpts)

// LegacyEscapes makes the string reader drop every \u escape the way
// unknown escapes are dropped, leaving any following hex digits as text.
func LegacyEscapes(v bool) TokenOpt {
	return func(o *tokenOpts) { o.legacyEscapes = v }
}
