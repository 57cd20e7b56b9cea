// Package cooccur builds co-occurrence networks of amino-acid substitutions
// across aligned protein sequences.
//
// Given a reference sequence and a set of alignments in its coordinate
// system, the package tallies residue usage per alignment position, marks
// the positions whose majority residue falls below a conservation
// threshold, extracts each sequence's substitutions at those positions, and
// accumulates an undirected network whose nodes are distinct substitutions
// and whose edge weights count the sequences in which two substitutions
// appear together. The network is then pruned by edge support and
// frequency, stripped of isolated nodes, and handed to a serializer.
package cooccur
