// Package summary renders a form view for non-browser hosts: a plain text
// report for terminals and CI logs, and a JSON document for tooling.
package summary
