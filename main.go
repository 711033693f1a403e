package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/t-kuni/kagami-config/cmd"
)

func main() {
	// KAGAMI_TOKEN などを .env から読み込む。存在しなくても構わない
	godotenv.Load(".env")

	err := cmd.NewRootCommand().CobraCommand.Execute()
	if err != nil {
		os.Exit(1)
	}
}
