package main

import (
	"context"
	"fmt"
)

func (cli *commandLine) seed() error {
	created, err := cli.acctSvc.Seed(context.Background())
	if err != nil {
		return err
	}
	if created {
		fmt.Println("default admin account created")
	} else {
		fmt.Println("accounts already exist, nothing to do")
	}
	return nil
}
