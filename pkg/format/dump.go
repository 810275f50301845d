package format

import (
	"io"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
)

// BlockDump is a plain copy of a Block tree without parent links, suitable for printing.
type BlockDump struct {
	Shape      string
	Kind       string
	Range      string
	Indent     string
	Alignment  string
	Wrap       string
	Incomplete bool
	Chain      *ChainInfo
	Children   []BlockDump
}

// Dump copies the tree rooted at b. Building the copy builds every block.
func Dump(b *Block) BlockDump {
	d := BlockDump{
		Shape:      b.Shape.String(),
		Range:      b.Range().String(),
		Indent:     b.Indent.String(),
		Incomplete: b.IsIncomplete(),
		Chain:      b.Chain,
	}

	if b.Node != nil {
		d.Kind = b.Kind().String()
	}

	if b.Alignment.IsSet() {
		d.Alignment = b.Alignment.String()
	}

	if b.Wrap != nil {
		d.Wrap = b.Wrap.String()
	}

	for _, child := range b.Children() {
		d.Children = append(d.Children, Dump(child))
	}

	return d
}

// WriteDump pretty prints the tree rooted at b to w.
func WriteDump(w io.Writer, b *Block) error {
	_, err := pretty.Fprintf(w, "%# v\n", Dump(b))
	return errors.Wrap(err, "failed to write block dump")
}
