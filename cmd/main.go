package main

import (
	"os"

	"gymsphere/config"
	"gymsphere/routes"
	"gymsphere/utils"
)

func main() {
	config.InitDB()
	utils.InitSES()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
