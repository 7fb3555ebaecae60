package main

import (
	"os"

	"github.com/jacoelho/dotselect/internal/config"
	"github.com/jacoelho/dotselect/internal/runner"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	result := runner.New(cfg).Run()
	result.Print()
	return result.ExitCode
}
