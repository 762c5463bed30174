package token

// Tokenize scans all of d. Unlike [Scanner.Next], every returned token
// carries its source text in Bytes. It stops at the first unknown
// bareword or malformed string.
func Tokenize(d []byte, opts ...TokenOpt) ([]Token, error) {
	s := NewScanner(d, opts...)
	var res []Token
	for {
		t := s.Next()
		start := t.Pos.I
		switch t.Type {
		case TNone:
			if len(t.Bytes) == 0 {
				return res, nil
			}
			return res, UnexpectedErr(string(t.Bytes), t.Pos)
		case TString:
			if _, err := s.ReadString(); err != nil {
				return res, err
			}
		case TNumber:
			s.Word()
		case TTrue, TFalse, TNull:
		default:
			s.Advance()
		}
		t.Bytes = d[start:s.Offset()]
		res = append(res, t)
	}
}
