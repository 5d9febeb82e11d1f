package main

import (
	"fmt"
	"os"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/mq_client"
	"github.com/bayezid0075/Dreamy-Life-v2.0/workers/daemons"
)

func CreateWorker(id string) daemons.Worker {
	switch id {
	case "cron_job":
		return daemons.NewCronJob()
	case "upline_notifier":
		return daemons.NewUplineNotifier()
	default:
		return nil
	}
}

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}
	if err := mq_client.Connect(); err != nil {
		fmt.Println(err.Error())
		return
	}

	ARVG := os.Args[1:]

	for _, id := range ARVG {
		fmt.Println("Start dreamy-daemon: " + id)
		worker := CreateWorker(id)
		if worker == nil {
			fmt.Println("Unknown daemon: " + id)
			os.Exit(1)
		}

		worker.Start()
	}
}
