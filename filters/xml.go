package filters

import (
	"github.com/beevik/etree"

	"github.com/dpotapov/tplx/document"
	"github.com/dpotapov/tplx/eval"
)

// ToXML is "input | toxml(rootName)": it serializes a Document into an XML
// string, Map entries becoming child elements and Seq/scalar values
// becoming repeated or text elements. Grounded on the teacher's
// etree.Document-backed component tree (chtml/component.go's
// etree.NewDocumentWithRoot), the one place in the pack that builds an XML
// tree programmatically rather than just parsing one.
var ToXML = eval.FilterSpec{
	Name: "toxml",
	Meta: eval.Metadata{MinNodes: 0, MaxNodes: 1},
	Fn: func(input document.Document, args []document.Document, _ eval.ContextWrapper) (document.Document, error) {
		rootName := "root"
		if len(args) == 1 {
			if s, ok := args[0].Str(); ok {
				rootName = s
			}
		}

		doc := etree.NewDocument()
		doc.Indent(2)
		root := doc.CreateElement(rootName)
		appendDocumentXML(root, input)

		s, err := doc.WriteToString()
		if err != nil {
			return document.Unit, err
		}
		return document.String(s), nil
	},
}

func appendDocumentXML(el *etree.Element, d document.Document) {
	switch d.Kind() {
	case document.KindMap:
		m, _ := d.Map()
		m.Range(func(k, v document.Document) bool {
			ks, _ := k.Str()
			child := el.CreateElement(ks)
			appendDocumentXML(child, v)
			return true
		})
	case document.KindSeq:
		seq, _ := d.Seq()
		for _, item := range seq {
			child := el.CreateElement("item")
			appendDocumentXML(child, item)
		}
	default:
		el.SetText(d.Render())
	}
}
