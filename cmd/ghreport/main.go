package main

import "github.com/Afrawles/ghreport/internal/logger"

func main() {
	logger.Init()
	execute()
}
