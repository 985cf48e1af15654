// Package main is the entry point for the AI engine daemon.
package main

import (
	_ "go.uber.org/automaxprocs/maxprocs"

	"github.com/kart-io/ai-engine/cmd/engine/app"
)

func main() {
	app.NewApp().Run()
}
