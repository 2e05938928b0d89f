package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Users(ctx context.Context) error
	Go(ctx context.Context, path string) error
	Back(ctx context.Context) error
	Status(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF, on "exit" or "quit", or when ctx is done.
//
//	Always:
//	  - help             show available commands
//	  - register         create an account
//	  - login            authenticate
//	  - users            list users (requires a stored access token)
//	  - go <path>        navigate to a route
//	  - back             return to the previous route
//	  - status           show route, session and token details
//	  - reset            log out and wipe the local store
//	  - exit | quit      leave the program
//
//	Logged in:
//	  - logout           drop the stored session
//
// Command errors are printed and the loop continues. Failures of session
// actions are already shown as alerts and are not returned here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("gs %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: users, go <path>, back, status, reset, logout, exit")
			} else {
				printlnFn("Available commands: register, login, users, go <path>, back, status, reset, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "users":
			cmdErr = a.Users(ctx)

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <path>")
				continue
			}
			cmdErr = a.Go(ctx, args[0])

		case "back":
			cmdErr = a.Back(ctx)

		case "status":
			cmdErr = a.Status(ctx)

		case "reset":
			cmdErr = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}
