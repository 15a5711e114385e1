package parser

import (
	"errors"
	"fmt"

	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
)

// ResolveNode offers node to every recognizer of the context, in order.
//
// A successful load attaches the element and the next recognizer is still
// offered the node, so a later match overwrites the element. A *ParsingError
// is recorded as an ERROR and ends the node. Any other failure, panics
// included, is recorded as FATAL and only skips that recognizer.
// Nodes that already carry an element are left alone.
func ResolveNode(node *cmn.Node, ctx *cmn.ParsingContext) {
	if node == nil || node.Element != nil {
		return
	}

	for _, recognizer := range ctx.Recognizers() {
		if stop := offer(node, ctx, recognizer); stop {
			return
		}
	}
}

// ResolveTree resolves node, then the children of sections in source order.
func ResolveTree(node *cmn.Node, ctx *cmn.ParsingContext) {
	if node == nil {
		return
	}

	ResolveNode(node, ctx)

	if !node.IsSection() {
		return
	}

	for _, child := range node.Children() {
		ResolveTree(child, ctx)
	}
}

// ResolveAll resolves every top-level tree of a parse.
func ResolveAll(tree *cmn.Tree, ctx *cmn.ParsingContext) {
	for _, root := range tree.Roots() {
		ResolveTree(root, ctx)
	}
}

// ResolveAs loads a specific element into node, bypassing the recognizers.
// Owning elements use it to claim their children before the generic traversal
// reaches them. Failures are recorded the same way ResolveNode records them.
// It reports whether the element was attached.
func ResolveAs(node *cmn.Node, ctx *cmn.ParsingContext, name string, element cmn.Element) bool {
	if node == nil || node.Element != nil {
		return false
	}

	attached, _ := load(node, ctx, name, element)

	return attached
}

// offer runs one recognizer against node and reports whether the node is done.
func offer(node *cmn.Node, ctx *cmn.ParsingContext, recognizer cmn.Recognizer) (stop bool) {
	if recognizer.Match == nil || recognizer.New == nil {
		ctx.Fatal(node, recognizer.Name, cmn.ErrMissingCapability)
		return false
	}

	matched, err := match(node, recognizer)
	if err != nil {
		ctx.Fatal(node, recognizer.Name, err)
		return false
	}

	if !matched {
		return false
	}

	element, err := instantiate(recognizer)
	if err != nil {
		ctx.Fatal(node, recognizer.Name, err)
		return false
	}

	_, stop = load(node, ctx, recognizer.Name, element)

	return stop
}

func match(node *cmn.Node, recognizer cmn.Recognizer) (matched bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", cmn.ErrRecognizerPanic, r)
		}
	}()

	return recognizer.Match(node), nil
}

func instantiate(recognizer cmn.Recognizer) (element cmn.Element, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", cmn.ErrRecognizerPanic, r)
		}
	}()

	element = recognizer.New()
	if element == nil {
		return nil, fmt.Errorf("%w: %s", cmn.ErrInstantiation, recognizer.Name)
	}

	return element, nil
}

// load runs element.Load with node as the current node and records the
// outcome. stop reports whether the node must not be offered to anyone else.
func load(node *cmn.Node, ctx *cmn.ParsingContext, name string, element cmn.Element) (attached, stop bool) {
	previous := ctx.SetCurrentNode(node)
	defer ctx.SetCurrentNode(previous)

	err := safeLoad(node, ctx, element)

	switch {
	case err == nil:
		ctx.Attach(node, element)
		return true, false
	case errors.Is(err, cmn.ErrDeclined):
	default:
		if perr, ok := cmn.AsParsingError(err); ok {
			ctx.Error(node, name, perr)
			return false, true
		}

		ctx.Fatal(node, name, err)
	}

	return false, false
}

func safeLoad(node *cmn.Node, ctx *cmn.ParsingContext, element cmn.Element) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", cmn.ErrRecognizerPanic, r)
		}
	}()

	return element.Load(node, ctx)
}
