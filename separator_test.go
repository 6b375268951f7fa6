package tprint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFSeparatorLayout(t *testing.T) {
	buf := &bytes.Buffer{}
	FSeparator(buf, "Section One", Cyan)

	assert.Equal(t, "\n"+Bold+Cyan+"--- Section One ---"+Reset+"\n\n", buf.String())
}
