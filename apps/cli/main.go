package main

import (
	"log"
	"os"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/result"
	"github.com/trezcool/matokeo/core/section"
	"github.com/trezcool/matokeo/core/student"
	logsvc "github.com/trezcool/matokeo/services/logger"
	"github.com/trezcool/matokeo/storage/store"
)

func main() {
	conf := core.NewConfig()

	std := log.New(os.Stderr, "", 0)
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	// set up the store client & repos
	client := store.NewClient(conf)
	studentRepo := store.NewStudentRepository(client)
	sectionRepo := store.NewSectionRepository(client)
	resultRepo := store.NewResultRepository(client)

	// start CLI
	cli := commandLine{
		students: student.NewService(studentRepo, sectionRepo, logger),
		sections: section.NewService(sectionRepo, studentRepo, logger),
		results:  result.NewService(resultRepo, studentRepo, logger),
		out:      os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			std.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
