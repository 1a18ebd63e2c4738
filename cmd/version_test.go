package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"postdeck/internal/version"
)

func TestRunVersionOutput(t *testing.T) {
	var buf bytes.Buffer
	orig := versionOutputWriter
	versionOutputWriter = &buf
	defer func() { versionOutputWriter = orig }()

	runVersion(versionCmd, nil)

	assert.Equal(t, "postdeck version "+version.String()+"\n", buf.String())
}
