// Package main hosts the postrec CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration and logging once, then hands
// off to the internal packages: process runs the extraction pipeline, plan and
// albums preview naming decisions without touching files, inspect reads tags
// back, and doctor checks the external tools.
package main
