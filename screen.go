package boxstyle

import (
	"fmt"
	"os"

	"github.com/npillmayer/boxstyle/config"
	"github.com/npillmayer/boxstyle/input"
	"github.com/npillmayer/boxstyle/layout"
	"github.com/npillmayer/boxstyle/scene"
	"github.com/npillmayer/boxstyle/style/cssom"
	"github.com/npillmayer/boxstyle/style/cssom/douceuradapter"
	"github.com/npillmayer/boxstyle/tree"
)

// Screen is an application window: a scene tree with a window node as its
// root, a style registry and an input dispatcher. Screens are independent
// of each other; a screen is not safe for concurrent use.
type Screen struct {
	opts       *config.Options
	reg        *cssom.Registry
	tree       *scene.Tree
	window     *scene.Node
	dispatcher *input.Dispatcher
}

// NewScreen creates a screen. If opts is nil, default options are used.
// Stylesheets listed in the options are loaded in order.
func NewScreen(opts *config.Options) (*Screen, error) {
	if opts == nil {
		opts = config.Default()
	} else if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.ApplyTracing()
	t := scene.NewTree()
	t.Spacing = opts.Spacing
	t.SetViewport(opts.ViewportWidth, opts.ViewportHeight)
	scr := &Screen{
		opts:       opts,
		reg:        cssom.NewRegistry(),
		tree:       t,
		window:     t.NewNode(scene.KindWindow),
		dispatcher: input.NewDispatcher(t),
	}
	if err := t.SetRoot(scr.window.Handle()); err != nil {
		panic(err) // a fresh node cannot have a parent
	}
	for _, path := range opts.Stylesheets {
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading stylesheet: %w", err)
		}
		if err = scr.LoadStylesheet(string(text)); err != nil {
			return nil, fmt.Errorf("stylesheet %s: %w", path, err)
		}
		tracer().Infof("loaded stylesheet %s", path)
	}
	return scr, nil
}

// Options returns the options of scr.
func (scr *Screen) Options() *config.Options {
	return scr.opts
}

// Registry returns the style registry of scr.
func (scr *Screen) Registry() *cssom.Registry {
	return scr.reg
}

// Tree returns the scene tree of scr.
func (scr *Screen) Tree() *scene.Tree {
	return scr.tree
}

// Window returns the root node of scr.
func (scr *Screen) Window() *scene.Node {
	return scr.window
}

// Input returns the input dispatcher of scr.
func (scr *Screen) Input() *input.Dispatcher {
	return scr.dispatcher
}

// LoadStylesheet adds the rules of a CSS stylesheet to the registry of scr.
// Either all rules are added or, in case of an error, none of them.
func (scr *Screen) LoadStylesheet(text string) error {
	if err := douceuradapter.LoadStylesheet(scr.reg, text); err != nil {
		return err
	}
	scr.invalidateAll()
	return nil
}

// SetStyle sets a property for a selector, e.g.
//
//     scr.SetStyle(".Label:hover", "color", "red")
//
func (scr *Screen) SetStyle(selector, path, value string) error {
	if err := scr.reg.Set(selector, path, value); err != nil {
		return err
	}
	scr.invalidateAll()
	return nil
}

// invalidateAll drops the cached styles of all nodes, as registry changes
// may affect any node.
func (scr *Screen) invalidateAll() {
	for _, n := range scr.nodes() {
		n.Invalidate()
	}
}

func (scr *Screen) nodes() []*scene.Node {
	var nodes []*scene.Node
	_ = scr.tree.TopDown(scr.tree.Root(), func(h tree.Handle) error {
		n, _ := scr.tree.Node(h)
		nodes = append(nodes, n)
		return nil
	})
	return nodes
}

// NewNode creates a node of kind k. The node has to be added to a parent
// with Add.
func (scr *Screen) NewNode(k *scene.Kind) *scene.Node {
	return scr.tree.NewNode(k)
}

// VerticalLayout creates a layout container stacking its children top to
// bottom.
func (scr *Screen) VerticalLayout() *scene.Node {
	return scr.tree.NewNode(scene.KindVerticalLayout)
}

// HorizontalLayout creates a layout container stacking its children left to
// right.
func (scr *Screen) HorizontalLayout() *scene.Node {
	return scr.tree.NewNode(scene.KindHorizontalLayout)
}

// Label creates a node displaying a text.
func (scr *Screen) Label(text string) *scene.Node {
	n := scr.tree.NewNode(scene.KindLabel)
	n.SetContent(&scene.TextContent{Text: text})
	return n
}

// Image creates a node displaying an image of size w × h.
func (scr *Screen) Image(w, h int) *scene.Node {
	n := scr.tree.NewNode(scene.KindImage)
	n.SetContent(scene.ImageContent{W: w, H: h})
	return n
}

// AttachedWindow creates a window which is placed relative to the viewport,
// independent of its parent.
func (scr *Screen) AttachedWindow(a scene.Attachment) *scene.Node {
	n := scr.tree.NewNode(scene.KindWindow)
	if err := n.Attach(a); err != nil {
		panic(err) // windows always accept attachments
	}
	return n
}

// ModalWindow creates a window centered in the viewport, which stops
// pointer events from propagating to its parent.
func (scr *Screen) ModalWindow() *scene.Node {
	return scr.tree.NewNode(scene.KindModalWindow)
}

// Resize sets the size of the viewport.
func (scr *Screen) Resize(w, h int) {
	scr.tree.SetViewport(w, h)
}

// Add appends child to the children of parent.
func (scr *Screen) Add(parent, child *scene.Node) error {
	return scr.tree.Add(parent.Handle(), child.Handle())
}

// Remove removes node n and its subtree from the screen. Style rules for
// the ids of the removed nodes are removed from the registry.
func (scr *Screen) Remove(n *scene.Node) {
	for _, r := range scr.tree.Remove(n.Handle()) {
		scr.reg.Forget(r.ID())
	}
}

// Update resolves styles and lays out the scene, if anything changed since
// the last update. After a layout pass, hover states are refreshed for the
// last pointer position; this may invalidate styles for the next update.
func (scr *Screen) Update() error {
	if !scr.tree.NeedsLayout() {
		return nil
	}
	if err := layout.Layout(scr.tree, scr.reg); err != nil {
		return err
	}
	scr.dispatcher.Refresh()
	return nil
}
