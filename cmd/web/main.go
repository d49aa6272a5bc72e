package main

import "taskhive_backend/internal/app"

func main() {
	app.Run()
}
