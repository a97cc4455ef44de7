package data

import (
	_ "embed"
)

// Seed is the sample data set loaded when DB_SEED is enabled
//
//go:embed seed.json
var Seed []byte
