package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRows(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Row
	}{
		{"empty", "", nil},
		{"three lines", "a\nb\nc", []Row{{1, "a"}, {2, "b"}, {3, "c"}}},
		{"trailing newline dropped", "a\nb\n", []Row{{1, "a"}, {2, "b"}}},
		{"interior blank kept", "a\n\nb", []Row{{1, "a"}, {2, ""}, {3, "b"}}},
		{"only trailing newline of two dropped", "a\n\n", []Row{{1, "a"}, {2, ""}}},
		{"lone newline", "\n", []Row{{1, ""}}},
		{"crlf", "a\r\nb\r\n", []Row{{1, "a"}, {2, "b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rows(tt.in))
		})
	}
}

func TestBuildEmpty(t *testing.T) {
	_, err := Build("")
	assert.ErrorIs(t, err, ErrNoLogs)

	var buf bytes.Buffer
	assert.ErrorIs(t, Write(&buf, ""), ErrNoLogs)
	assert.Zero(t, buf.Len())
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "2025-01-01 10:00:00 | Comment ID: 1 | Name: Ann | Replied: hi\nsecond"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestBuildSinglePage(t *testing.T) {
	pdf, err := Build("a\nb\nc")
	require.NoError(t, err)
	assert.Equal(t, 1, pdf.PageCount())
}

func TestBuildRendersTableCells(t *testing.T) {
	pdf, err := Build("a\nb\nc\n")
	require.NoError(t, err)
	pdf.SetCompression(false)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	doc := buf.String()

	assert.Equal(t, 1, strings.Count(doc, "(#) Tj"))
	assert.Equal(t, 1, strings.Count(doc, "(Log Entry) Tj"))
	for i, text := range []string{"a", "b", "c"} {
		assert.Equal(t, 1, strings.Count(doc, fmt.Sprintf("(%d) Tj", i+1)), "index %d", i+1)
		assert.Equal(t, 1, strings.Count(doc, "("+text+") Tj"), "text %q", text)
	}
	assert.NotContains(t, doc, "(4) Tj")
}

func TestBuildPaginates(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 300; i++ {
		fmt.Fprintf(&sb, "entry %d\n", i)
	}
	pdf, err := Build(sb.String())
	require.NoError(t, err)
	assert.Greater(t, pdf.PageCount(), 1)
}

func TestBuildSplitsRowTallerThanPage(t *testing.T) {
	long := strings.Repeat("reply text that keeps going ", 2000)
	pdf, err := Build(long)
	require.NoError(t, err)
	assert.Greater(t, pdf.PageCount(), 1)
}

func TestBuildNonLatinText(t *testing.T) {
	pdf, err := Build("Name: Zoë | Comment: 価格は？ | Replied: 👍\n\tindented")
	require.NoError(t, err)
	assert.Equal(t, 1, pdf.PageCount())
}

func TestWrapFitsColumn(t *testing.T) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCellMargin(cellPadding)
	pdf.SetFont(fontFamily, "", fontSize)

	text := strings.TrimSpace(strings.Repeat("comment reply ", 60))
	lines := wrap(pdf, text)
	require.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, pdf.GetStringWidth(l), textWidth-2*cellPadding+0.01)
	}
	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(lines, " ")))

	assert.Equal(t, []string{""}, wrap(pdf, ""))
}

func TestLatin1(t *testing.T) {
	assert.Equal(t, "café ?", latin1("café 世"))
	assert.Equal(t, "a b", latin1("a\tb"))
	assert.Equal(t, "??", latin1("\x01€"))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	require.NoError(t, WriteFile(path, "one\ntwo"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	missing := filepath.Join(t.TempDir(), "never.pdf")
	assert.ErrorIs(t, WriteFile(missing, ""), ErrNoLogs)
	_, err = os.Stat(missing)
	assert.True(t, os.IsNotExist(err))
}
