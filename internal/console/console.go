// Package console is an interactive line-oriented driver over a single
// compiled Program, for authors debugging jury solutions by hand rather
// than through a full judging battery. It reuses the compiler and vm
// packages unmodified — it is a thin driver, not a second
// implementation — mirroring the teacher's REPL loop shape (print
// prompt, scan a line, dispatch, repeat).
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"basedchecker/internal/compiler"
	"basedchecker/internal/vm"
)

// Run drives the console. args, if non-empty, names a source file to
// load immediately; otherwise the console starts with an empty program
// and expects a "load" command.
func Run(args []string, in io.Reader, out io.Writer) error {
	c := &console{out: out}
	if len(args) > 0 {
		if err := c.load(args[0]); err != nil {
			return err
		}
	}

	prompt := isInteractive(in)
	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			return nil
		}
		if err := c.dispatch(line); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

// isInteractive reports whether in looks like a live terminal, so piped
// fixture input (as used by the CLI black-box tests) runs silently
// instead of emitting a prompt before every expected line of output.
func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type console struct {
	out     io.Writer
	program *vm.Program
}

func (c *console) dispatch(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "load":
		if len(fields) != 2 {
			return fmt.Errorf("usage: load <file>")
		}
		return c.load(fields[1])
	case "vars":
		return c.printVars()
	case "step":
		return c.step()
	case "run":
		return c.run()
	case "input":
		return c.input(fields[1:])
	case "reset":
		if c.program == nil {
			return fmt.Errorf("nothing loaded")
		}
		c.program = c.program.Clone()
		return nil
	default:
		return fmt.Errorf("unknown command %q (load/vars/step/run/input/reset/exit)", fields[0])
	}
}

func (c *console) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	text := strings.TrimRight(string(data), "\n")
	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}
	prog, verr := compiler.Compile(lines)
	if verr != nil {
		return fmt.Errorf("compile failed: %s", verr)
	}
	c.program = prog
	fmt.Fprintf(c.out, "loaded %d instructions\n", len(prog.Instructions))
	return nil
}

func (c *console) step() error {
	if c.program == nil {
		return fmt.Errorf("nothing loaded")
	}
	if c.program.Returned() {
		fmt.Fprintln(c.out, "program already returned")
		return nil
	}
	if verr := vm.Step(c.program); verr != nil {
		fmt.Fprintf(c.out, "%s\n", *verr)
		return nil
	}
	fmt.Fprintf(c.out, "pc=%d runtime=%d\n", c.program.PC(), c.program.Runtime())
	return nil
}

func (c *console) run() error {
	if c.program == nil {
		return fmt.Errorf("nothing loaded")
	}
	verr := vm.Run(c.program, ^uint64(0))
	if verr != nil {
		fmt.Fprintf(c.out, "%s\n", *verr)
		return nil
	}
	fmt.Fprintln(c.out, "returned")
	for {
		v, ok := c.program.PopOutput()
		if !ok {
			break
		}
		printValue(c.out, v)
	}
	return nil
}

func (c *console) input(args []string) error {
	if c.program == nil {
		return fmt.Errorf("nothing loaded")
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: input <int> | input <int> <int> ...")
	}
	if len(args) == 1 {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		c.program.PushInput(vm.Integer(n))
		return nil
	}
	items := make([]int64, len(args))
	for i, a := range args {
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		items[i] = n
	}
	c.program.PushInput(vm.Array(items))
	return nil
}

func (c *console) printVars() error {
	if c.program == nil {
		return fmt.Errorf("nothing loaded")
	}
	names := make([]string, 0, len(c.program.Vars()))
	for name := range c.program.Vars() {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(c.out, "%s = ", name)
		printValue(c.out, c.program.Vars()[name])
	}
	return nil
}

func printValue(out io.Writer, v vm.Value) {
	if v.Kind == vm.ArrayValue {
		fmt.Fprintf(out, "%v\n", v.Array)
		return
	}
	fmt.Fprintln(out, v.Int)
}
