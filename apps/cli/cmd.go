package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/result"
	"github.com/trezcool/matokeo/core/section"
	"github.com/trezcool/matokeo/core/student"
)

var (
	// readLineFunc reads one line of user input; mockable in tests.
	readLineFunc = func() (string, error) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		return line, nil
	}

	errHelp = errors.New("help provided")
)

type commandLine struct {
	students *student.Service
	sections *section.Service
	results  *result.Service
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  students list|add|edit|rm - manage students")
	fmt.Fprintln(cli.out, "  sections list|add|edit|rm - manage sections")
	fmt.Fprintln(cli.out, "  results  list|add|edit|rm - manage exam results")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 3 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "students":
		return cli.runStudents(args[2:])
	case "sections":
		return cli.runSections(args[2:])
	case "results":
		return cli.runResults(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// notify prints the coordinator's current notification, if any.
// Operation failures surface here and are not CLI errors.
func (cli *commandLine) notify(notif *core.Notification) {
	if notif != nil {
		fmt.Fprintf(cli.out, "%s: %s\n", notif.Kind, notif.Message)
	}
}

// confirm prints a delete intent and waits for an explicit "y".
func (cli *commandLine) confirm(intent core.DeleteIntent) (bool, error) {
	fmt.Fprintf(cli.out, "%s [y/N]: ", intent.Message)
	answer, err := readLineFunc()
	if err != nil {
		return false, err
	}
	if core.CleanString(answer, true /* lower */) != "y" {
		cli.notify(core.NewInfoNotification("Aborted."))
		return false, nil
	}
	return true, nil
}

func (cli *commandLine) newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(cli.out, 0, 8, 2, ' ', 0)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
