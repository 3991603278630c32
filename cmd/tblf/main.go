package main

import (
	"context"
	"os"

	"github.com/bjaus/tblf/internal/cli"
)

func main() {
	os.Exit(cli.New(os.Stdin, os.Stdout, os.Stderr).Main(context.Background(), os.Args[1:]))
}
