// Package config provides configuration loading, merging, and validation
// facilities for the ello-go client and development server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetServerConfig] for the development API server. Both derive a narrow,
// validated view from [StructuredConfig].
package config
