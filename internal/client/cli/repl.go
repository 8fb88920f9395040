package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn and printFn are test seams for REPL-level output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface is the command surface the REPL dispatches to. App implements
// it; tests use a recording stub.
type execIface interface {
	isLoggedIn() bool
	Feed(ctx context.Context) error
	Post(ctx context.Context, text string) error
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Draft(ctx context.Context, arg string) error
	Stats(ctx context.Context) error
	Reset(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: feed (l), post [text], login, signup, draft [clear], stats, reset, exit"
	helpSignedIn  = "Available commands: feed (l), post [:emoji] [text], whoami, draft [clear], stats, reset, logout, exit"
)

// runREPL reads one command per line from in and dispatches it to a. The
// prompt comes from statusFn and is reprinted before every line.
//
//	help              show available commands
//	feed | l          render the feed
//	post [text]       compose a post; prompts for text when none is given
//	login | signup    open the sign-in prompts
//	logout            end the session
//	whoami            show the signed-in account
//	draft [clear]     show or discard the composer draft
//	stats             show local counters
//	reset             delete everything stored locally, after confirmation
//	exit | quit       leave
//
// Command errors are printed and the loop keeps going. It returns on exit,
// end of input or context cancellation.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printFn(statusFn())

		line, readErr := in.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			if readErr != nil {
				printlnFn()
				return
			}
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "feed", "l":
			err = a.Feed(ctx)

		case "post":
			err = a.Post(ctx, rest)

		case "login":
			err = a.Login(ctx)

		case "signup":
			err = a.Signup(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "draft":
			err = a.Draft(ctx, rest)

		case "stats":
			err = a.Stats(ctx)

		case "reset":
			err = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
		if readErr != nil {
			return
		}
	}
}
