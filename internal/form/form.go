// Package form reads and fills AcroForm fields in PDF documents. It is the
// adapter between the reconciler's FormField view and the PDF form surface.
package form

import (
	"bytes"
	"fmt"
	"io"
	"os"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/rotisserie/eris"

	"github.com/sells-group/loanpack/internal/model"
)

// Fields enumerates the AcroForm fields of the PDF at path, in document
// declaration order.
func Fields(path string) ([]model.FormField, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "form: open %s", path)
	}
	defer f.Close()

	return FieldsFromReader(f)
}

// FieldsFromReader enumerates AcroForm fields from an in-memory PDF.
func FieldsFromReader(r io.ReadSeeker) ([]model.FormField, error) {
	ctx, err := readContext(r)
	if err != nil {
		return nil, err
	}

	fields, _, _, err := walkFields(ctx)
	return fields, err
}

// Fill writes values into the named text fields of the PDF read from r and
// writes the updated document to w. Unknown field names are skipped and
// reported back. NeedAppearances is set so viewers regenerate widget
// appearances for the new values.
func Fill(r io.ReadSeeker, w io.Writer, values map[string]string) (filled []string, err error) {
	ctx, err := readContext(r)
	if err != nil {
		return nil, err
	}

	_, acroForm, dicts, err := walkFields(ctx)
	if err != nil {
		return nil, err
	}
	if acroForm == nil {
		return nil, eris.New("form: document has no AcroForm")
	}

	for name, val := range values {
		d, ok := dicts[name]
		if !ok {
			continue
		}
		d["V"] = types.StringLiteral(val)
		delete(d, "AP")
		filled = append(filled, name)
	}
	acroForm["NeedAppearances"] = types.Boolean(true)

	if err := pdfapi.WriteContext(ctx, w); err != nil {
		return nil, eris.Wrap(err, "form: write filled document")
	}
	return filled, nil
}

// FillFile fills the form at inputPath and writes the result to outputPath.
func FillFile(inputPath, outputPath string, values map[string]string) ([]string, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, eris.Wrapf(err, "form: read %s", inputPath)
	}

	var buf bytes.Buffer
	filled, err := Fill(bytes.NewReader(data), &buf, values)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return nil, eris.Wrapf(err, "form: write %s", outputPath)
	}
	return filled, nil
}

func readContext(r io.ReadSeeker) (*pdfmodel.Context, error) {
	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed

	ctx, err := pdfapi.ReadContext(r, conf)
	if err != nil {
		return nil, eris.Wrap(err, "form: read pdf")
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, eris.Wrap(err, "form: resolve page tree")
	}
	return ctx, nil
}

// walkFields resolves the AcroForm Fields array. It returns the fields in
// declaration order, the AcroForm dictionary, and a name→dictionary index
// used by Fill for value write-back.
func walkFields(ctx *pdfmodel.Context) ([]model.FormField, types.Dict, map[string]types.Dict, error) {
	rootDict, err := ctx.Catalog()
	if err != nil {
		return nil, nil, nil, eris.Wrap(err, "form: resolve catalog")
	}

	acroFormObj, found := rootDict.Find("AcroForm")
	if !found {
		return nil, nil, nil, nil
	}
	acroForm, err := ctx.DereferenceDict(acroFormObj)
	if err != nil {
		return nil, nil, nil, eris.Wrap(err, "form: dereference AcroForm")
	}
	if acroForm == nil {
		return nil, nil, nil, nil
	}

	fieldsObj, found := acroForm.Find("Fields")
	if !found {
		return nil, acroForm, nil, nil
	}
	fieldsArray, err := ctx.DereferenceArray(fieldsObj)
	if err != nil {
		return nil, nil, nil, eris.Wrap(err, "form: dereference Fields array")
	}

	var fields []model.FormField
	dicts := make(map[string]types.Dict, len(fieldsArray))
	for i, fieldObj := range fieldsArray {
		fieldDict, err := ctx.DereferenceDict(fieldObj)
		if err != nil || fieldDict == nil {
			continue
		}

		field := model.FormField{Name: fieldName(ctx, fieldDict, i)}
		field.Type = fieldType(ctx, fieldDict)
		field.Required = requiredFlag(ctx, fieldDict)
		field.Value = fieldValue(ctx, fieldDict, field.Type)

		fields = append(fields, field)
		dicts[field.Name] = fieldDict
	}
	return fields, acroForm, dicts, nil
}

func fieldName(ctx *pdfmodel.Context, d types.Dict, index int) string {
	if nameObj, found := d.Find("T"); found {
		if name, err := ctx.DereferenceStringOrHexLiteral(nameObj, pdfmodel.V10, nil); err == nil && name != "" {
			return name
		}
	}
	return fmt.Sprintf("field_%d", index)
}

func fieldType(ctx *pdfmodel.Context, d types.Dict) model.FormFieldType {
	ftObj, found := d.Find("FT")
	if !found {
		// FT is inheritable.
		if parentObj, found := d.Find("Parent"); found {
			if parent, err := ctx.DereferenceDict(parentObj); err == nil && parent != nil {
				return fieldType(ctx, parent)
			}
		}
		return model.FormFieldUnknown
	}

	ftName, err := ctx.DereferenceName(ftObj, pdfmodel.V10, nil)
	if err != nil {
		return model.FormFieldUnknown
	}

	switch ftName {
	case "Tx":
		return model.FormFieldText
	case "Btn":
		flags := fieldFlags(ctx, d)
		if flags&(1<<15) != 0 {
			return model.FormFieldRadio
		}
		if flags&(1<<16) != 0 {
			return model.FormFieldButton
		}
		return model.FormFieldCheckbox
	case "Ch":
		if fieldFlags(ctx, d)&(1<<17) != 0 {
			return model.FormFieldComboBox
		}
		return model.FormFieldListBox
	case "Sig":
		return model.FormFieldSignature
	default:
		return model.FormFieldUnknown
	}
}

func fieldFlags(ctx *pdfmodel.Context, d types.Dict) int {
	if flagsObj, found := d.Find("Ff"); found {
		if flags, err := ctx.DereferenceInteger(flagsObj); err == nil && flags != nil {
			return int(*flags)
		}
	}
	return 0
}

func requiredFlag(ctx *pdfmodel.Context, d types.Dict) bool {
	return fieldFlags(ctx, d)&2 != 0
}

func fieldValue(ctx *pdfmodel.Context, d types.Dict, ft model.FormFieldType) string {
	valueObj, found := d.Find("V")
	if !found {
		return ""
	}

	switch ft {
	case model.FormFieldCheckbox, model.FormFieldRadio:
		if name, err := ctx.DereferenceName(valueObj, pdfmodel.V10, nil); err == nil {
			return name.Value()
		}
	default:
		if val, err := ctx.DereferenceStringOrHexLiteral(valueObj, pdfmodel.V10, nil); err == nil {
			return val
		}
	}
	return ""
}
