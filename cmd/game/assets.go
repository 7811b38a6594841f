package main

import "embed"

// configFS holds the bundled game.json and word packs
//
//go:embed configs
var configFS embed.FS
