package main

import (
	"context"
	"log"
	"os"

	"quizbuilder/cli"
	"quizbuilder/client"
)

func main() {
	baseURL := os.Getenv("QUIZ_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	api := client.New(baseURL)
	if err := cli.Run(context.Background(), api, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
