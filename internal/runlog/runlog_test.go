package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp: testTime,
		RunID:     "0f8c2a1b-7d3e-4c52-9a61-2b0e5f7c9d11",
		View:      "principal",
		Method:    "annuity",
		Input:     "loans.csv",
		Output:    "exports/principal_20250101_0f8c2a1b.csv",
		Rows:      42,
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, testEntry(), entries[0])
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.View = "interest"
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "principal", entries[0].View)
	assert.Equal(t, "interest", entries[1].View)

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestRead_Missing(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	_, err := UnmarshalEntry([]string{"a", "b"})
	assert.ErrorContains(t, err, "expected 7 fields")

	rec := MarshalEntry(testEntry())
	rec[colTimestamp] = "yesterday"
	_, err = UnmarshalEntry(rec)
	assert.ErrorContains(t, err, "parsing timestamp")

	rec = MarshalEntry(testEntry())
	rec[colRows] = "many"
	_, err = UnmarshalEntry(rec)
	assert.ErrorContains(t, err, "parsing rows")
}

func TestRead_BadRow(t *testing.T) {
	dir := t.TempDir()
	content := Header + "\nnot-a-time,r,principal,flat,in,out,1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))

	_, err := Read(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}
