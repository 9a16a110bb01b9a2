package main

import (
	"fmt"
	"io"
	"os"
)

const usage = `usage: ocppctl <command> [flags]

commands:
  decode   parse OCPP-J frames from a JSON/JSONC file or stdin
  actions  list the actions and error codes of a protocol version
  serve    run the codec inspection HTTP API
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	var err error
	switch args[0] {
	case "decode":
		err = runDecode(args[1:], stdin, stdout)
	case "actions":
		err = runActions(args[1:], stdout)
	case "serve":
		err = runServe(args[1:])
	case "-h", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "ocppctl: unknown command %q\n%s", args[0], usage)
		return 2
	}
	if err != nil {
		fmt.Fprintf(stderr, "ocppctl %s: %v\n", args[0], err)
		return 1
	}
	return 0
}
