package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Refresh(ctx context.Context) error
	Go(ctx context.Context, view string) error
	BrowseItems(ctx context.Context) error
	SearchItems(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the campustrade CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help           — show available commands
//	  - items          — browse the item listings
//	  - search         — search items by keyword
//	  - go <view>      — open a view (protected views redirect to login)
//	  - orders | wishlist | messages | profile — shortcuts for go <view>
//	  - exit | quit    — leave the program
//
//	Not logged in:
//	  - register       — create an account
//	  - login          — authenticate
//
//	Logged in:
//	  - whoami         — show the current identity
//	  - refresh        — re-fetch the profile from the server
//	  - logout         — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "ct> %s > \n", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: items, search, orders, wishlist, messages, profile, go <view>, whoami, refresh, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: items, search, go <view>, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "go":
			if len(parts) < 2 {
				fmt.Fprintln(out, "Usage: go <view>")
				continue
			}
			_ = a.Go(ctx, parts[1])

		case "items":
			_ = a.BrowseItems(ctx)

		case "orders", "wishlist", "messages", "profile":
			_ = a.Go(ctx, cmd)

		case "search":
			_ = a.SearchItems(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
