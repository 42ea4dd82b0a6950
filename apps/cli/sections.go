package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/trezcool/matokeo/core"
)

func (cli *commandLine) runSections(args []string) error {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	addName := addCmd.String("name", "", "The section name.")
	addDesc := addCmd.String("desc", "", "Optional description.")

	editCmd := flag.NewFlagSet("edit", flag.ExitOnError)
	editID := editCmd.String("id", "", "The section id.")
	editName := editCmd.String("name", "", "New section name.")
	editDesc := editCmd.String("desc", "", "New description.")

	rmCmd := flag.NewFlagSet("rm", flag.ExitOnError)
	rmID := rmCmd.String("id", "", "The section id.")

	ctx := context.Background()

	switch args[0] {
	case "list":
		return cli.listSections(ctx)
	case "add":
		if err := addCmd.Parse(args[1:]); err != nil {
			return err
		}
		cli.sections.OpenCreate()
		draft := &cli.sections.Session().Draft
		draft.Name = *addName
		draft.Description = *addDesc
		cli.sections.Save(ctx)
		cli.notify(cli.sections.Notification())
		return nil
	case "edit":
		if err := editCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *editID == "" {
			editCmd.Usage()
			return errHelp
		}
		cli.sections.Load(ctx)
		cli.sections.OpenEdit(core.ID(*editID))
		session := cli.sections.Session()
		if session == nil {
			cli.notify(cli.sections.Notification())
			return nil
		}
		editCmd.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "name":
				session.Draft.Name = *editName
			case "desc":
				session.Draft.Description = *editDesc
			}
		})
		cli.sections.Save(ctx)
		cli.notify(cli.sections.Notification())
		return nil
	case "rm":
		if err := rmCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *rmID == "" {
			rmCmd.Usage()
			return errHelp
		}
		intent := cli.sections.RequestDelete(core.ID(*rmID))
		ok, err := cli.confirm(intent)
		if err != nil || !ok {
			return err
		}
		cli.sections.ConfirmDelete(ctx, intent.ID)
		cli.notify(cli.sections.Notification())
		return nil
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) listSections(ctx context.Context) error {
	cli.sections.Load(ctx)
	if notif := cli.sections.Notification(); notif != nil && notif.Kind == core.NotifError {
		cli.notify(notif)
		return nil
	}

	sections := cli.sections.Sections()
	if len(sections) == 0 {
		fmt.Fprintln(cli.out, "No records found")
		return nil
	}

	w := cli.newTable()
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION\tSTUDENTS")
	for _, s := range sections {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			s.ID, s.Name, orDash(s.Description), cli.sections.StudentCount(s.ID))
	}
	return w.Flush()
}
