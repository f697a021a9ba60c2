package main

import "github.com/Egor213/RosoutDiag/internal/app"

func main() {
	app.Run()
}
