package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/linkcheck"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(&linkcheck.FailureError{Count: 3}))
	assert.Equal(t, 1, exitCode(fmt.Errorf("check: %w", &linkcheck.FailureError{Count: 1})))
	assert.Equal(t, 2, exitCode(linkcheck.Errorf(linkcheck.EINTERNAL, "file cannot be read: x")))
	assert.Equal(t, 2, exitCode(errors.New("boom")))
}
