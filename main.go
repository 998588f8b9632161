package main

import (
	"log"
	"os"

	"github.com/valyala/fasthttp"

	"will-engine/internal/export"
	"will-engine/internal/handler"
	"will-engine/internal/render"
	"will-engine/internal/template"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	templates, err := template.NewRegistry()
	if err != nil {
		log.Fatalf("Template registry failed: %v", err)
	}
	log.Printf("Loaded templates: %v", templates.Combinations())

	h := handler.New(export.New(templates, render.Default()))

	log.Printf("Will engine starting on port %s", port)
	if err := fasthttp.ListenAndServe(":"+port, h.Route); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
