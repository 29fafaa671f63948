package main

import (
	"log"
	"os"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/account"
	emailsvc "github.com/duy-ank/asm-apdp/services/email"
	"github.com/duy-ank/asm-apdp/storage/database"
	sqlxrepos "github.com/duy-ank/asm-apdp/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	errAndDie(err)

	// set up DB
	errAndDie(database.CreateIfNotExist(conf))
	db, err := database.Open(conf)
	errAndDie(err)
	defer func() { _ = db.Close() }()
	errAndDie(db.Ping())

	acctRepo := sqlxrepos.NewAccountRepository(db)

	// start CLI
	cli := commandLine{
		db:       db.DB,
		acctRepo: acctRepo,
		acctSvc:  account.NewService(acctRepo, emailsvc.NewConsoleService(conf), conf),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
