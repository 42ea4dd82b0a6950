package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/result"
)

func (cli *commandLine) runResults(args []string) error {
	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	listStudent := listCmd.String("student", "", "Only show results for this student id.")
	listSubject := listCmd.String("subject", "", "Only show results for this subject.")

	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	addStudent := addCmd.String("student", "", "The student id.")
	addSubject := addCmd.String("subject", "", "The exam subject.")
	addMarks := addCmd.String("marks", "", "Marks obtained (0-100).")
	addDate := addCmd.String("date", "", "Optional exam date (YYYY-MM-DD).")

	editCmd := flag.NewFlagSet("edit", flag.ExitOnError)
	editID := editCmd.String("id", "", "The result id.")
	editStudent := editCmd.String("student", "", "New student id.")
	editSubject := editCmd.String("subject", "", "New subject.")
	editMarks := editCmd.String("marks", "", "New marks (0-100).")
	editDate := editCmd.String("date", "", "New exam date (YYYY-MM-DD).")

	rmCmd := flag.NewFlagSet("rm", flag.ExitOnError)
	rmID := rmCmd.String("id", "", "The result id.")

	ctx := context.Background()

	switch args[0] {
	case "list":
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		cli.results.SetStudentFilter(core.ID(*listStudent))
		cli.results.SetSubjectFilter(*listSubject)
		return cli.listResults(ctx)
	case "add":
		if err := addCmd.Parse(args[1:]); err != nil {
			return err
		}
		cli.results.OpenCreate()
		draft := &cli.results.Session().Draft
		draft.StudentID = core.ID(*addStudent)
		draft.Subject = *addSubject
		draft.Marks = *addMarks
		draft.ExamDate = *addDate
		cli.results.Save(ctx)
		cli.notify(cli.results.Notification())
		return nil
	case "edit":
		if err := editCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *editID == "" {
			editCmd.Usage()
			return errHelp
		}
		cli.results.Load(ctx)
		cli.results.OpenEdit(core.ID(*editID))
		session := cli.results.Session()
		if session == nil {
			cli.notify(cli.results.Notification())
			return nil
		}
		editCmd.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "student":
				session.Draft.StudentID = core.ID(*editStudent)
			case "subject":
				session.Draft.Subject = *editSubject
			case "marks":
				session.Draft.Marks = *editMarks
			case "date":
				session.Draft.ExamDate = *editDate
			}
		})
		cli.results.Save(ctx)
		cli.notify(cli.results.Notification())
		return nil
	case "rm":
		if err := rmCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *rmID == "" {
			rmCmd.Usage()
			return errHelp
		}
		intent := cli.results.RequestDelete(core.ID(*rmID))
		ok, err := cli.confirm(intent)
		if err != nil || !ok {
			return err
		}
		cli.results.ConfirmDelete(ctx, intent.ID)
		cli.notify(cli.results.Notification())
		return nil
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listResults(ctx context.Context) error {
	cli.results.Load(ctx)
	if notif := cli.results.Notification(); notif != nil && notif.Kind == core.NotifError {
		cli.notify(notif)
		return nil
	}

	visible := cli.results.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(cli.out, "No records found")
		return nil
	}

	w := cli.newTable()
	fmt.Fprintln(w, "ID\tSTUDENT\tSUBJECT\tMARKS\tGRADE\tDATE")
	for _, r := range visible {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%s\t%s\n",
			r.ID, cli.results.StudentLabel(r.StudentID), r.Subject,
			r.Marks, result.Classify(r.Marks).Letter, orDash(r.ExamDate))
	}
	return w.Flush()
}
