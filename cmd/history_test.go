package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_NoAuditLog(t *testing.T) {
	isolate(t)

	// The audit logger is only opened by Execute's lifecycle, not in
	// tests, so history sees an empty log and must degrade politely.
	out := mustRun(t, "history")
	assert.Contains(t, out, "no validation runs recorded")
}
