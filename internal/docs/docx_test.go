package docs

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractDOCX(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Κανονισμός πρακτικής άσκησης.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Απαιτούνται 240 ώρες</w:t><w:tab/><w:t>συνολικά.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	text, err := extractDOCX(buildDOCX(t, doc))
	require.NoError(t, err)

	assert.Contains(t, text, "Κανονισμός πρακτικής άσκησης.")
	assert.Contains(t, text, "240 ώρες\tσυνολικά.")

	lines := strings.Split(text, "\n")
	assert.Len(t, lines, 2, "each paragraph ends with a newline")
}

func TestExtractDOCXTableCells(t *testing.T) {
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:tbl><w:tr>
      <w:tc><w:p><w:r><w:t>Ημέρα</w:t></w:r></w:p></w:tc>
      <w:tc><w:p><w:r><w:t>Ώρες</w:t></w:r></w:p></w:tc>
    </w:tr></w:tbl>
  </w:body>
</w:document>`

	text, err := extractDOCX(buildDOCX(t, doc))
	require.NoError(t, err)

	assert.Contains(t, text, "Ημέρα")
	assert.Contains(t, text, "Ώρες")
}

func TestExtractDOCXIgnoresNonTextNodes(t *testing.T) {
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Τίτλος</w:t></w:r></w:p>
  </w:body>
</w:document>`

	text, err := extractDOCX(buildDOCX(t, doc))
	require.NoError(t, err)
	assert.Equal(t, "Τίτλος", text)
}

func TestExtractDOCXNotAnArchive(t *testing.T) {
	_, err := extractDOCX([]byte("όχι docx"))
	assert.Error(t, err)
}

func TestExtractDOCXMissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = extractDOCX(buf.Bytes())
	assert.Error(t, err)
}
