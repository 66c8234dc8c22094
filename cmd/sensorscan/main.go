// cmd/sensorscan/main.go
package main

import (
	"sensorscan/internal/app"
	"sensorscan/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
