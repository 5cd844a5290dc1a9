package main

import (
	"os"

	"model-catalog/internal/app"
)

// @title        Model Catalog API
// @version      1.0
// @description  Queryable catalog of language models and their sampling parameters.
// @BasePath     /api
func main() {
	os.Exit(app.Run())
}
