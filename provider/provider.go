// Package provider holds the model backends used when the rule-based
// translation pipeline cannot produce a confident result.
package provider

import "github.com/openlexica/bhasha"

// ModelProvider is the interface for model translation backends.
// This is an alias to the main package interface for convenience.
type ModelProvider = bhasha.ModelProvider

// ModelRequest is an alias to the main package type.
type ModelRequest = bhasha.ModelRequest
