package main

import "github.com/DarkTime312/Weather-App/internal/app"

func main() {
	app.Run()
}
