package main

import (
	"Matrafl-Backend/domain"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	require.NoError(t, rootCmd.Execute())
	for _, name := range []string{"serve", "migrate", "create-user", "export"} {
		assert.Contains(t, buf.String(), name)
	}
}

func TestReadPassword(t *testing.T) {
	pw, err := readPassword(strings.NewReader("hunter22\r\nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "hunter22", pw)

	pw, err = readPassword(strings.NewReader("no-newline"))
	require.NoError(t, err)
	assert.Equal(t, "no-newline", pw)

	_, err = readPassword(strings.NewReader("\n"))
	assert.Error(t, err)
}

func TestExportKey(t *testing.T) {
	doc := domain.ExportDocument{
		UserID:     "0b7f6a52-3c3e-4b8e-9d55-2f0c2b1a9e10",
		ExportedAt: time.Date(2024, 2, 3, 23, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "exports/0b7f6a52-3c3e-4b8e-9d55-2f0c2b1a9e10/2024-02-03-matrafl.json", exportKey(doc))
}
