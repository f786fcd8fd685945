package main

import (
	"sahabat3t-backend/cmd/server"
)

func main() {
	server.Init()
	server.Run()
}
