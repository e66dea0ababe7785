package form

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/loanpack/internal/model"
)

// buildPDF assembles a minimal single-page PDF from raw object bodies,
// computing the xref table. Object numbers are 1-based in input order and
// object 1 must be the catalog.
func buildPDF(t *testing.T, objects ...string) []byte {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefPos)
	return buf.Bytes()
}

// formPDF returns a PDF with one required text field, one checkbox, and one
// combo box.
func formPDF(t *testing.T) []byte {
	t.Helper()

	return buildPDF(t,
		"<< /Type /Catalog /Pages 2 0 R /AcroForm << /Fields [4 0 R 5 0 R 6 0 R] >> >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Annots [4 0 R 5 0 R 6 0 R] >>",
		"<< /Type /Annot /Subtype /Widget /FT /Tx /T (first-name) /Ff 2 /Rect [10 700 200 720] >>",
		"<< /Type /Annot /Subtype /Widget /FT /Btn /T (agree) /V /Yes /Rect [10 660 30 680] >>",
		fmt.Sprintf("<< /Type /Annot /Subtype /Widget /FT /Ch /T (state) /Ff %d /Opt [(CA) (FL)] /Rect [10 620 200 640] >>", 1<<17),
	)
}

func writeTempPDF(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "form.pdf")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestFields(t *testing.T) {
	t.Parallel()

	fields, err := Fields(writeTempPDF(t, formPDF(t)))
	require.NoError(t, err)
	require.Len(t, fields, 3)

	assert.Equal(t, "first-name", fields[0].Name)
	assert.Equal(t, model.FormFieldText, fields[0].Type)
	assert.True(t, fields[0].Required)
	assert.Empty(t, fields[0].Value)

	assert.Equal(t, "agree", fields[1].Name)
	assert.Equal(t, model.FormFieldCheckbox, fields[1].Type)
	assert.False(t, fields[1].Required)
	assert.Equal(t, "Yes", fields[1].Value)

	assert.Equal(t, "state", fields[2].Name)
	assert.Equal(t, model.FormFieldComboBox, fields[2].Type)
}

func TestFields_NoAcroForm(t *testing.T) {
	t.Parallel()

	pdf := buildPDF(t,
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
	)

	fields, err := Fields(writeTempPDF(t, pdf))
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestFields_UnnamedFieldGetsPositionalName(t *testing.T) {
	t.Parallel()

	pdf := buildPDF(t,
		"<< /Type /Catalog /Pages 2 0 R /AcroForm << /Fields [4 0 R] >> >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Annots [4 0 R] >>",
		"<< /Type /Annot /Subtype /Widget /FT /Tx /Rect [10 700 200 720] >>",
	)

	fields, err := Fields(writeTempPDF(t, pdf))
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "field_0", fields[0].Name)
}

func TestFill_WritesValuesAndSkipsUnknownNames(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	filled, err := Fill(bytes.NewReader(formPDF(t)), &out, map[string]string{
		"first-name": "Ima",
		"no-such":    "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"first-name"}, filled)

	fields, err := FieldsFromReader(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	require.Len(t, fields, 3)
	assert.Equal(t, "Ima", fields[0].Value)
	assert.Equal(t, "Yes", fields[1].Value, "untouched fields keep their values")
}

func TestFill_NoAcroForm(t *testing.T) {
	t.Parallel()

	pdf := buildPDF(t,
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
	)

	var out bytes.Buffer
	_, err := Fill(bytes.NewReader(pdf), &out, map[string]string{"x": "y"})
	assert.Error(t, err)
}

func TestFillFile(t *testing.T) {
	t.Parallel()

	inPath := writeTempPDF(t, formPDF(t))
	outPath := filepath.Join(t.TempDir(), "filled.pdf")

	filled, err := FillFile(inPath, outPath, map[string]string{"first-name": "Joseph"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first-name"}, filled)

	fields, err := Fields(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Joseph", fields[0].Value)
}
