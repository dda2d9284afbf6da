package main

import (
	"log"
	"net/http"
)

// Serves the static dashboard page for local dev. The page talks to the Go
// app on :3000 (same origin is fine when reverse-proxied in real deploys).
func main() {
	fs := http.FileServer(http.Dir("./frontend/public"))
	http.Handle("/", fs)
	log.Println("UI on http://localhost:8081")
	log.Fatal(http.ListenAndServe(":8081", nil))
}
