package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"git.sr.ht/~sircmpwn/getopt"

	"git.sr.ht/~mango/baux/log"
	"git.sr.ht/~mango/baux/vm"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: baux [-p] [-e code | file]")
	os.Exit(1)
}

func main() {
	var (
		code     string
		haveCode bool
		printEnv bool
	)

	opts, optind, err := getopt.Getopts(os.Args, "e:p")
	if err != nil {
		log.CrashOnError = true
		log.Err("%s", err)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'e':
			code, haveCode = opt.Value, true
		case 'p':
			printEnv = true
		}
	}
	args := os.Args[optind:]

	env := make(vm.Environment, 64)
	switch {
	case haveCode && len(args) == 0:
		vm.Exec(code, env, os.Stdout)
	case !haveCode && len(args) == 1:
		runFile(args[0], env)
	case !haveCode && len(args) == 0:
		runRepl(env)
	default:
		usage()
	}

	if printEnv {
		dumpEnv(env)
	}
}

func runFile(name string, env vm.Environment) {
	bytes, err := os.ReadFile(name)
	if err != nil {
		log.CrashOnError = true
		log.Err("%s", err)
	}
	vm.Exec(string(bytes), env, os.Stdout)
}

// runRepl evaluates one line at a time against a single environment, so
// bindings persist between lines the same way they persist between Exec
// calls in an embedding host.
func runRepl(env vm.Environment) {
	r := bufio.NewReader(os.Stdin)

	for {
		fmt.Fprint(os.Stderr, "* ")
		line, err := r.ReadString('\n')

		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(os.Stderr, "^D")
			return
		case err != nil:
			log.Err("%s", err)
			return
		}

		vm.Exec(line, env, os.Stdout)
	}
}

func dumpEnv(env vm.Environment) {
	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s = %s\n", name, env[name].Render())
	}
}
