package main

import (
	"os"

	"imagevault/internal/app"
)

// @title        Image API Chatbot
// @version      1.0.0
// @description  Natural-language front-end over the Image API.
// @BasePath     /
func main() {
	os.Exit(app.RunChatbot())
}
