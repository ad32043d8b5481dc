package main

import (
	"context"

	"github.com/Purva137/Restaurant-Ordering-System/internal/pkg"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := pkg.NewApp(context.Background())
	if err != nil {
		logrus.Fatal("application init failed: ", err)
	}
	app.RunApp()
}
