// cmd/dotplot/main.go
package main

import (
	"dnadotplot/internal/app"
	"dnadotplot/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
