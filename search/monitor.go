package search

import "github.com/roamly/waypoint/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterSemanticSearch(pairs []*core.QAMatch, facts []*core.FactMatch)
	AfterVerbatimScan(pairIds, factIds []uint64)
	SemanticAndVerbatimHit(result *Result)
	VerbatimHit(result *Result)
	SemanticHit(result *Result)
	Finish(results []*Result)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                             {}
func (n *noopMonitor) AfterSemanticSearch(_ []*core.QAMatch, _ []*core.FactMatch) {}
func (n *noopMonitor) AfterVerbatimScan(_, _ []uint64)                            {}
func (n *noopMonitor) SemanticAndVerbatimHit(_ *Result)                           {}
func (n *noopMonitor) VerbatimHit(_ *Result)                                      {}
func (n *noopMonitor) SemanticHit(_ *Result)                                      {}
func (n *noopMonitor) Finish(_ []*Result)                                         {}
