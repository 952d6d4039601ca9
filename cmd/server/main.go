package main

import (
	"os"

	"imagevault/internal/app"
)

// @title                       Image API
// @version                     1.0.0
// @description                 Folders, image and PDF uploads, metadata and search, authenticated with an X-API-Key header.
// @BasePath                    /api
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
func main() {
	os.Exit(app.Run())
}
