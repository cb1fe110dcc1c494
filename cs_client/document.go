package cs_client

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Document is a parsed CloudStack API response. The API nests entity
// fragments at varying depths depending on the command, so lookups walk
// the whole tree and match tag names case-insensitively.
type Document struct {
	root *node
}

type Element struct {
	n *node
}

type node struct {
	XMLName  xml.Name
	Chardata string `xml:",chardata"`
	Children []node `xml:",any"`
}

func ParseDocument(body []byte) (Document, error) {
	root := &node{}
	if err := xml.NewDecoder(bytes.NewReader(body)).Decode(root); err != nil {
		return Document{}, fmt.Errorf("decode xml: %s", err)
	}
	return Document{root: root}, nil
}

// All returns every element with the given tag name, in document order.
func (d Document) All(name string) []Element {
	if d.root == nil {
		return nil
	}
	var found []Element
	collect(d.root, name, &found)
	return found
}

// FirstValue returns the text of the first element with the given tag
// name anywhere in the document.
func (d Document) FirstValue(name string) (string, bool) {
	all := d.All(name)
	if len(all) == 0 {
		return "", false
	}
	return all[0].Text(), true
}

func collect(n *node, name string, found *[]Element) {
	if strings.EqualFold(n.XMLName.Local, name) {
		*found = append(*found, Element{n: n})
	}
	for i := range n.Children {
		collect(&n.Children[i], name, found)
	}
}

func (e Element) Name() string {
	if e.n == nil {
		return ""
	}
	return e.n.XMLName.Local
}

func (e Element) Text() string {
	if e.n == nil {
		return ""
	}
	return strings.TrimSpace(e.n.Chardata)
}

// ChildValue returns the text of the named direct child. It reports
// false when no such child exists or the child is empty.
func (e Element) ChildValue(name string) (string, bool) {
	if e.n == nil {
		return "", false
	}
	for i := range e.n.Children {
		child := &e.n.Children[i]
		if strings.EqualFold(child.XMLName.Local, name) {
			value := strings.TrimSpace(child.Chardata)
			if value == "" {
				return "", false
			}
			return value, true
		}
	}
	return "", false
}
