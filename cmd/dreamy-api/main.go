package main

import (
	"fmt"
	"os"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
	"github.com/bayezid0075/Dreamy-Life-v2.0/mq_client"
	"github.com/bayezid0075/Dreamy-Life-v2.0/routes"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if err := models.Migrate(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if path := os.Getenv("SEED_PATH"); len(path) > 0 {
		if err := models.LoadSeeds(path); err != nil {
			fmt.Println(err.Error())
			return
		}
	}

	if err := mq_client.Connect(); err != nil {
		config.Logger.Warnf("AMQP unavailable, notifications will not fan out: %v", err)
	}

	r := routes.SetupRouter()
	r.Listen(":3000")
}
