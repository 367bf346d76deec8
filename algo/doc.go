// Package algo implements the CPU analysis algorithms that run directly
// against a csr.Graph: level-synchronous BFS and its reverse-CSR twin
// find_callers, PageRank by power iteration, single-pass greedy Louvain
// community detection, and three structural anti-pattern detectors.
//
// Every algorithm here is single-threaded and suspension-free; blocking
// only happens in the gpu package, at dispatch waits and buffer readback.
// None of them mutate the graph they read.
package algo
