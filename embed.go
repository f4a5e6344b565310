// Package customers holds assets shared by the binaries of the customer records service.
package customers

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
