package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/rtdbview/encode"
	"github.com/signadot/rtdbview/ir"
)

// Logf writes to stderr. *ir.Node arguments are rendered as compact JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf, encode.EncodeWire(true)); err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = buf.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
