// Package dive implements the bounded depth-first reachability search
// from route entry points (C8, Diver half).
package dive

import (
	"github.com/Yhnlvy/panther/internal/ast"
	"github.com/Yhnlvy/panther/internal/issue"
	"github.com/Yhnlvy/panther/internal/nsp"
	"github.com/Yhnlvy/panther/internal/testset"
	"github.com/Yhnlvy/panther/internal/tracer"
	"github.com/Yhnlvy/panther/internal/tracer/route"
	"github.com/Yhnlvy/panther/internal/visitor"
)

// Finding is one reported vulnerability: the call stack of functions
// traversed to reach it, and the issues the visitor produced on the
// terminal function.
type Finding struct {
	Stack  []*tracer.Function
	Issues []issue.Issue
}

// Diver performs bounded DFS over a set of routes, running the C4
// visitor at each frontier function and stopping a branch as soon as it
// produces any issue.
type Diver struct {
	Extractor *tracer.Extractor
	Tests     func() *testset.TestSet // fresh TestSet per call, mirroring a fresh PantherTestSet per test() invocation
	Findings  []Finding
}

// New returns a Diver using extractor for function resolution and
// testsFactory to build a fresh TestSet for each function tested.
func New(extractor *tracer.Extractor, testsFactory func() *testset.TestSet) *Diver {
	return &Diver{Extractor: extractor, Tests: testsFactory}
}

// test runs the C4 visitor over fn's node with a fresh registry (no
// nosec lines, no metrics sink — matching the original Diver.test, which
// builds a disposable PantherNodeVisitor per call).
func (d *Diver) test(fn *tracer.Function) []issue.Issue {
	v := &visitor.Visitor{
		Filename: fn.FilePath,
		Tests:    d.Tests(),
		Nosec:    map[int]bool{},
	}
	res := v.Run(fn.Node)
	return res.Issues
}

// find collects the functions called inside fn.Node: a CallExpression
// with callee tokens ["*x"] resolves via TryMatchFunction in fn's own
// file; tokens ["*m", "*p"] resolves via TryFetchFunction.
func (d *Diver) find(fn *tracer.Function) ([]*tracer.Function, error) {
	var out []*tracer.Function
	for _, n := range ast.Traverse(fn.Node) {
		call, ok := n.(*ast.CallExpression)
		if !ok {
			continue
		}
		var callee *tracer.Function
		var err error
		if nsp.MatchNameSpace(call, []string{"*"}) {
			identifier := nsp.ExtractNameSpace(call)[0][1:]
			callee, err = d.Extractor.TryMatchFunction(fn.FilePath, identifier)
		} else if nsp.MatchNameSpace(call, []string{"*", "*"}) {
			ns := nsp.ExtractNameSpace(call)
			callee, err = d.Extractor.TryFetchFunction(fn.FilePath, ns[0][1:], ns[1][1:])
		}
		if err != nil {
			return nil, err
		}
		if callee != nil {
			out = append(out, callee)
		}
	}
	return out, nil
}

// Dive performs the bounded DFS from fn, descending along stack. depth
// is decremented before testing fn; once it reaches zero this branch
// terminates without descending further.
func (d *Diver) Dive(fn *tracer.Function, stack []*tracer.Function, depth int) error {
	depth--
	branch := append(append([]*tracer.Function{}, stack...), fn)

	issues := d.test(fn)
	if len(issues) > 0 {
		d.Findings = append(d.Findings, Finding{Stack: branch, Issues: issues})
		return nil
	}
	if depth <= 0 {
		return nil
	}
	callees, err := d.find(fn)
	if err != nil {
		return err
	}
	for _, callee := range callees {
		if err := d.Dive(callee, branch, depth); err != nil {
			return err
		}
	}
	return nil
}

// DiveAll runs Dive from every entry function of every route, returning
// the total vulnerability count (one per branch that produced a
// finding).
func (d *Diver) DiveAll(routes []route.Route, depth int) (int, error) {
	d.Findings = nil
	for _, r := range routes {
		for _, fn := range r.EntryPointFunctions {
			if err := d.Dive(fn, nil, depth); err != nil {
				return 0, err
			}
		}
	}
	return len(d.Findings), nil
}
