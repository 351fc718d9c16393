// Package scheduler assigns employees to projects skill by skill. The
// greedy strategy processes projects in priority order and never
// backtracks; the optimized strategy composes greedy with a bounded
// local-improvement pass.
package scheduler
