package assembler

import (
	"bytes"

	"github.com/vk/hyprcustom/internal/descriptor"
)

// Document is a rendered descriptor: assignment lines first, then function
// declarations.
type Document struct {
	Assignments []string
	Functions   []string
}

// Compose serialises the Fields of env, then the given prepare function,
// then build and package with their bodies unchanged.
func Compose(env *descriptor.Environment, prepare string) (*Document, error) {
	doc := &Document{}
	for _, name := range Fields {
		if line, ok := descriptor.Serialize(env, name); ok {
			doc.Assignments = append(doc.Assignments, line)
		}
	}

	doc.Functions = append(doc.Functions, prepare)
	for _, name := range []string{FuncBuild, FuncPackage} {
		body, err := descriptor.ExtractBody(env, name)
		if err != nil {
			return nil, err
		}
		doc.Functions = append(doc.Functions, descriptor.Assemble(name, body))
	}
	return doc, nil
}

// Bytes renders the document. Functions are separated by blank lines.
func (d *Document) Bytes() []byte {
	var b bytes.Buffer
	for _, line := range d.Assignments {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, fn := range d.Functions {
		b.WriteByte('\n')
		b.WriteString(fn)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// PatchStatement is the shell statement that applies the staged patch from
// makepkg's source directory.
func PatchStatement(patchName string) string {
	return `patch -Np1 -i "${srcdir}/` + descriptor.Escape(patchName) + `"`
}

// RewritePrepare returns the prepare function of env with the patch
// statement appended after its original statements, at the indentation of
// the first one.
func RewritePrepare(env *descriptor.Environment, patchName string) (string, error) {
	body, err := descriptor.ExtractBody(env, FuncPrepare)
	if err != nil {
		return "", err
	}
	body = append(body, descriptor.Indent(body)+PatchStatement(patchName))
	return descriptor.Assemble(FuncPrepare, body), nil
}
