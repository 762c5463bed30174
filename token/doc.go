// Package token scans JSON text for the parser.
//
// A [Scanner] keeps a private cursor over one document. [Scanner.Next]
// reports the kind of the upcoming token after skipping whitespace. It
// leaves structural characters, strings and numbers in place for the
// caller to consume, but a bareword (true, false, null or anything it does
// not recognise) is consumed by the lookahead itself.
//
// [Tokenize] runs a Scanner over a whole document and is mostly useful for
// debugging.
package token
