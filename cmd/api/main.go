package main

import (
	"context"
	"log"

	"perfhistory/cmd"

	_ "github.com/lib/pq"
)

func main() {
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps.ApiHandler)

	deps.ReplayTrigger.Start(context.Background())

	err = deps.ApiHandler.StartApi(3009)
	if err != nil {
		log.Fatal(err)
	}
}
