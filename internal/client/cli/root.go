package cli

import (
	"bufio"
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	v := a.retriever.View()

	s := string(v.Status)
	if v.Fallback {
		s += " local-menu"
	}
	if m := a.Mode(); m != "" {
		s += " " + string(m)
	}
	return fmt.Sprintf("(%s)", s)
}

// Root runs the REPL on the app input until the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the Mikuna storefront (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.in))
}
