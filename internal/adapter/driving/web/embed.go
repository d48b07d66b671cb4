package web

import "embed"

// StaticFS holds the embedded static assets (stylesheet, board script).
//
//go:embed static/*
var StaticFS embed.FS

// templateFS holds the embedded HTML templates.
//
//go:embed templates/*.html
var templateFS embed.FS
