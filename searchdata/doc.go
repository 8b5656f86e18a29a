// Package searchdata holds the immutable, shared-ownership record graph
// the mapping search builds once per query and references from many queue
// entries: PrimSearchData and StructureSearchData are constructed once and
// shared; LatticeMappingSearchData and AtomMappingSearchData derive from
// them and from each other, and are constructed lazily as candidates enter
// the search. No layer mutates its ancestors after construction.
//
// Grounded on CASM's SearchData.cc constructors, adapted from C++
// shared_ptr fan-out to plain Go pointers — safe here because the core is
// single-threaded and synchronous (see the module's concurrency notes) and
// every record is written exactly once, at construction.
package searchdata
