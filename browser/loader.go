package browser

import (
	"context"
	"errors"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

// ============================================================================
// LOADER — resolve entity types, pick a display mode, mount the page
// ============================================================================
// One fetch, no retry. A failed fetch is absorbed here: the loading
// indicator goes away and nothing is mounted.
// ============================================================================

// ErrNoRoot means the document has no #node element.
var ErrNoRoot = errors.New("browser: page has no #node root")

// PageProps are the inputs of a node page.
type PageProps struct {
	Dcid        string
	NodeName    string
	DisplayType PageDisplayType
	StatVarID   string
}

// Mounter renders a page into root.
type Mounter interface {
	Mount(ctx context.Context, root *goquery.Selection, props PageProps) error
}

// Loader wires a TypeFetcher to a Mounter.
type Loader struct {
	Types   TypeFetcher
	Mounter Mounter
	Log     *logrus.Entry
}

// Load runs the page bootstrap on doc. Only caller faults are returned:
// a missing root or a failing Mounter.
func (l *Loader) Load(ctx context.Context, doc *goquery.Document, query url.Values) error {
	log := l.Log
	if log == nil {
		log = logrus.WithField("component", "browser")
	}

	root := doc.Find("#node").First()
	if root.Length() == 0 {
		return ErrNoRoot
	}
	dcid := root.AttrOr("data-dcid", "")
	nodeName := root.AttrOr("data-nn", "")
	statVarID := query.Get("statVar")

	types, err := l.Types.TypeOf(ctx, dcid)
	if err != nil {
		log.Warnf("⚠️ typeOf %s failed: %v", dcid, err)
		RemoveLoadingMessage(root)
		return nil
	}

	props := PageProps{
		Dcid:        dcid,
		NodeName:    nodeName,
		DisplayType: GetPageDisplayType(types, statVarID),
		StatVarID:   statVarID,
	}
	log.Debugf("📊 %s: %d types, display %s", dcid, len(types), props.DisplayType)
	return l.Mounter.Mount(ctx, root, props)
}

// RemoveLoadingMessage deletes #page-loading from the document sel lives in.
func RemoveLoadingMessage(sel *goquery.Selection) {
	if sel.Length() == 0 {
		return
	}
	n := sel.Nodes[0]
	for n.Parent != nil {
		n = n.Parent
	}
	top := goquery.NewDocumentFromNode(n)
	top.Find("#page-loading").Remove()
}

