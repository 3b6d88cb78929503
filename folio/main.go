package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/coinfolio/cmd"
)

func main() {
	name := path.Base(os.Args[0])
	report := cmd.NewReportCmd()
	report.SetFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), report.Usage())
		flag.PrintDefaults()
	}

	// Only completes when invoked by the shell completion.
	cmd.Completion(flag.CommandLine).Complete(name)

	flag.Parse()
	os.Exit(int(report.Execute(context.Background(), flag.CommandLine)))
}
