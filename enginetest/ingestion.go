// Package enginetest provides in-memory collaborator implementations for
// ingest.Ingestion, ingest.LedgerUpdateIndex and sink.Sink,
// used by the engine package's tests and by the replay CLI subcommand.
package enginetest

import (
	"context"
	"fmt"

	"github.com/dominikbraun/graph"

	"github.com/ahratul/inx-chronicle/ingest"
	"github.com/ahratul/inx-chronicle/ledger"
)

// BlockFixture is one block in a hand-built cone fixture, referencing its
// parents by index within the owning MilestoneFixture's Blocks slice.
type BlockFixture struct {
	Block    ingest.Block
	Metadata ingest.BlockMetadata
	Parents  []int
}

// MilestoneFixture is one milestone's worth of fixture data: its stamp,
// protocol parameters, block DAG (topologically sorted into cone order via
// dominikbraun/graph) and the ledger updates its transactions resolve
// against.
type MilestoneFixture struct {
	Stamp   ledger.MilestoneStamp
	Params  ledger.ProtocolParameters
	Blocks  []BlockFixture
	Updates *LedgerUpdateIndex
}

// coneOrder topologically sorts fixture.Blocks by parent references,
// producing deterministic cone (ancestors-first) order.
func coneOrder(blocks []BlockFixture) ([]int, error) {
	g := graph.New(graph.IntHash, graph.Directed(), graph.Acyclic())
	for i := range blocks {
		if err := g.AddVertex(i); err != nil {
			return nil, fmt.Errorf("enginetest: add vertex %d: %w", i, err)
		}
	}
	for i, b := range blocks {
		for _, p := range b.Parents {
			// edge parent -> child orders the parent first.
			if err := g.AddEdge(p, i); err != nil {
				return nil, fmt.Errorf("enginetest: add edge %d->%d: %w", p, i, err)
			}
		}
	}
	order, err := graph.TopologicalSort(g)
	if err != nil {
		return nil, fmt.Errorf("enginetest: topological sort: %w", err)
	}
	return order, nil
}

// coneStream adapts a fixture's topologically-ordered blocks to
// ingest.ConeStream; restartable by constructing a fresh instance.
type coneStream struct {
	blocks []BlockFixture
	pos    int
}

func newConeStream(order []int, blocks []BlockFixture) *coneStream {
	ordered := make([]BlockFixture, len(order))
	for i, idx := range order {
		ordered[i] = blocks[idx]
	}
	return &coneStream{blocks: ordered}
}

func (s *coneStream) Next(context.Context) (*ingest.BlockData, bool, error) {
	if s.pos >= len(s.blocks) {
		return nil, false, nil
	}
	b := s.blocks[s.pos]
	s.pos++
	return &ingest.BlockData{Block: b.Block, Metadata: b.Metadata}, true, nil
}

// milestone adapts a MilestoneFixture to ingest.Milestone.
type milestone struct {
	fixture MilestoneFixture
	order   []int
}

func (m *milestone) Stamp() ledger.MilestoneStamp             { return m.fixture.Stamp }
func (m *milestone) ProtocolParams() ledger.ProtocolParameters { return m.fixture.Params }
func (m *milestone) ConeStream() ingest.ConeStream {
	return newConeStream(m.order, m.fixture.Blocks)
}
func (m *milestone) LedgerUpdates() ingest.LedgerUpdateIndex { return m.fixture.Updates }

// MilestoneStream replays a fixed slice of MilestoneFixtures in order.
type MilestoneStream struct {
	fixtures []MilestoneFixture
	pos      int
}

// NewMilestoneStream builds a MilestoneStream over fixtures. Each fixture's
// cone order is computed when Next yields it.
func NewMilestoneStream(fixtures []MilestoneFixture) (*MilestoneStream, error) {
	return &MilestoneStream{fixtures: fixtures}, nil
}

func (s *MilestoneStream) Next(context.Context) (ingest.Milestone, bool, error) {
	if s.pos >= len(s.fixtures) {
		return nil, false, nil
	}
	f := s.fixtures[s.pos]
	s.pos++
	order, err := coneOrder(f.Blocks)
	if err != nil {
		return nil, false, err
	}
	return &milestone{fixture: f, order: order}, true, nil
}

// Ingestion adapts a fixed slice of MilestoneFixtures to ingest.Ingestion.
type Ingestion struct {
	fixtures []MilestoneFixture
}

// NewIngestion builds an Ingestion collaborator over fixtures.
func NewIngestion(fixtures []MilestoneFixture) *Ingestion {
	return &Ingestion{fixtures: fixtures}
}

func (i *Ingestion) MilestoneStream(_ context.Context, from ledger.MilestoneIndex) (ingest.MilestoneStream, error) {
	var tail []MilestoneFixture
	for _, f := range i.fixtures {
		if f.Stamp.Index >= from {
			tail = append(tail, f)
		}
	}
	return NewMilestoneStream(tail)
}
