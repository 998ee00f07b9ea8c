// FocusChess - keyboard-driven chess board built with Ebitengine
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "focuschess:", err)
		os.Exit(1)
	}
}
