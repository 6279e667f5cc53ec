/*
Package trie provides a prefix tree index over a word list for letter-rack
searches: finding every stored word that can be assembled from a multiset of
available letters, optionally topped up with wildcards that each stand in
for one arbitrary letter. It supports optional case folding and diacritic
normalisation of the stored words.
*/
package trie
