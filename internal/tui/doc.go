// Package tui holds the interactive terminal flows of vendorsum.
//
// ConfigWizard walks a user through the connection, input and timeout
// settings, tests the connection, and returns a config.ProjectConfig ready to
// be written as vendorsum.yaml. Commands only start it when DetectMode reports
// a human at the terminal.
package tui
