package commands

import "fmt"

const help = `snapshare is a photo sharing backend for a single event.

usage:
  %s run <config.yml>   start the HTTP server
  %s version            print the version
  %s help               print this message
`

func HandleHelp(args []string) {
	fmt.Printf(help, args[0], args[0], args[0]) //nolint
}
