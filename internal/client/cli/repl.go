package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = "Available commands: (l)ist, (n)ext, (p)rev, page N, all, paged, active, show ID, menu, (r)efetch, reset, ping, status, exit"

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	GoTo(ctx context.Context, arg string) error
	All(ctx context.Context) error
	Paged(ctx context.Context) error
	Active(ctx context.Context) error
	Show(ctx context.Context, arg string) error
	Menu(ctx context.Context) error
	Refetch(ctx context.Context) error
	Reset(ctx context.Context) error
	Ping(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the storefront client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF, on context cancellation
// or when the user types "exit" or "quit".
//
// Commands
//
//	help             show available commands
//	list | l         show the current categories (or the local menu)
//	next | n         next page
//	prev | p         previous page
//	page N           go to page N
//	all              load every page
//	paged            switch back to paged mode
//	active           show only active categories
//	show ID          show one category
//	menu             show the menu
//	refetch | r      repeat the last retrieval
//	reset            clear loaded data
//	ping             probe the catalog endpoint
//	status           show retrieval and connection state
//	exit | quit      leave the program
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the REPL loop resilient.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("mikuna> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := strings.ToLower(parts[0])
		arg := strings.Join(parts[1:], " ")

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "n", "next":
			_ = a.Next(ctx)

		case "p", "prev":
			_ = a.Prev(ctx)

		case "page":
			if arg == "" {
				printlnFn("Usage: page <n>")
				continue
			}
			_ = a.GoTo(ctx, arg)

		case "all":
			_ = a.All(ctx)

		case "paged":
			_ = a.Paged(ctx)

		case "active":
			_ = a.Active(ctx)

		case "show":
			if arg == "" {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, arg)

		case "menu":
			_ = a.Menu(ctx)

		case "r", "refetch":
			_ = a.Refetch(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
