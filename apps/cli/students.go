package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/trezcool/matokeo/core"
)

func (cli *commandLine) runStudents(args []string) error {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	addName := addCmd.String("name", "", "The student's full name.")
	addEmail := addCmd.String("email", "", "The student's email address.")
	addSection := addCmd.String("section", "", "Optional section id.")
	addDate := addCmd.String("date", "", "Optional enrollment date (YYYY-MM-DD).")

	editCmd := flag.NewFlagSet("edit", flag.ExitOnError)
	editID := editCmd.String("id", "", "The student id.")
	editName := editCmd.String("name", "", "New full name.")
	editEmail := editCmd.String("email", "", "New email address.")
	editSection := editCmd.String("section", "", "New section id.")
	editDate := editCmd.String("date", "", "New enrollment date (YYYY-MM-DD).")

	rmCmd := flag.NewFlagSet("rm", flag.ExitOnError)
	rmID := rmCmd.String("id", "", "The student id.")

	ctx := context.Background()

	switch args[0] {
	case "list":
		return cli.listStudents(ctx)
	case "add":
		if err := addCmd.Parse(args[1:]); err != nil {
			return err
		}
		cli.students.OpenCreate()
		draft := &cli.students.Session().Draft
		draft.Name = *addName
		draft.Email = *addEmail
		draft.SectionID = core.ID(*addSection)
		draft.EnrollmentDate = *addDate
		cli.students.Save(ctx)
		cli.notify(cli.students.Notification())
		return nil
	case "edit":
		if err := editCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *editID == "" {
			editCmd.Usage()
			return errHelp
		}
		cli.students.Load(ctx)
		cli.students.OpenEdit(core.ID(*editID))
		session := cli.students.Session()
		if session == nil {
			cli.notify(cli.students.Notification())
			return nil
		}
		editCmd.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "name":
				session.Draft.Name = *editName
			case "email":
				session.Draft.Email = *editEmail
			case "section":
				session.Draft.SectionID = core.ID(*editSection)
			case "date":
				session.Draft.EnrollmentDate = *editDate
			}
		})
		cli.students.Save(ctx)
		cli.notify(cli.students.Notification())
		return nil
	case "rm":
		if err := rmCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *rmID == "" {
			rmCmd.Usage()
			return errHelp
		}
		intent := cli.students.RequestDelete(core.ID(*rmID))
		ok, err := cli.confirm(intent)
		if err != nil || !ok {
			return err
		}
		cli.students.ConfirmDelete(ctx, intent.ID)
		cli.notify(cli.students.Notification())
		return nil
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listStudents(ctx context.Context) error {
	cli.students.Load(ctx)
	if notif := cli.students.Notification(); notif != nil && notif.Kind == core.NotifError {
		cli.notify(notif)
		return nil
	}

	students := cli.students.Students()
	if len(students) == 0 {
		fmt.Fprintln(cli.out, "No records found")
		return nil
	}

	w := cli.newTable()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSECTION\tENROLLED")
	for _, s := range students {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Name, s.Email, cli.students.SectionLabel(s.SectionID), orDash(s.EnrollmentDate))
	}
	return w.Flush()
}
