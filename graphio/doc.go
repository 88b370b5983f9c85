// Package graphio converts external graph descriptions into core.Graph
// values and textual simulation specs into typed overrides and drops. It is
// glue: all validation of graph structure happens in core, and all string
// parsing happens here — the engine packages never see raw input.
//
// Two on-disk formats are supported, one per CLI variant:
//
//   - JSON (ReadJSON/LoadJSON): named nodes and directed edges with
//     latency_ms weights, producing core.Graph[string]. Parallel edges are
//     permitted.
//   - CSV (ReadCSV/LoadCSV): rows of "u,v,weight" with non-negative integer
//     node ids and undirected edges, producing core.Graph[int]. An optional
//     header row is auto-detected. The node set is sized 0..max(id), so ids
//     need not be contiguous. Duplicate pairs are rejected.
package graphio
