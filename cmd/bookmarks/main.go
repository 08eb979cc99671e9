package main

import (
	"github.com/fsdevblog/bookmarks/internal/app"
	"github.com/fsdevblog/bookmarks/internal/config"
)

func main() {
	appConf, confErr := config.LoadConfig()
	if confErr != nil {
		panic(confErr)
	}

	a := app.Must(app.New(*appConf))

	a.Logger.Infof("Starting server on %s", appConf.ServerAddress)
	if err := a.Run(); err != nil {
		panic(err)
	}
}
