package main

import "chat-room-api/config"

func main() {
	config.RunServer()
}
