package main

import (
	"platinalab.dev/backend/cmd/app"
)

func main() {
	app.Run()
}
