package main

import "github.com/elizacamber/composeplayground/internal/app"

func main() {
	app.Run()
}
