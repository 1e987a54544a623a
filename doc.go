/*
Package navcache merges server-computed partial updates into a client-side
navigation cache, copy-on-write.

The cache is a tree of route segments.  Each node fans out into named
parallel slots, and each slot maps segment keys to child nodes holding
rendered content, a loading placeholder, or nothing yet.  When the server
answers a navigation with data for one path through that tree, the merge
overlays the incoming data along the path while every untouched slot entry
keeps referencing the old tree's nodes.  Older snapshots therefore stay
valid and cheap to hold on to, the same structural-sharing property that
makes persistent maps practical as an alternative to defensive copying.

Sharing discipline

A destination tree handed to a fill is exclusively owned by the caller and
mutated in place.  The source tree is only ever read: slot maps and nodes
reachable from it are forked on first write, never modified.  A node or map
is forked at most once per merge, detected by reference identity, so
repeated merges into the same destination converge instead of reallocating.

When the existing tree lacks a prefix of the update path, the merge stops
quietly, leaving the destination shaped "not yet loaded"; whatever renders
the cache observes the hole and triggers a fresh fetch.  Nothing here
performs I/O, and there are no error returns on the merge path.

Two fill flavors are exposed: FillNewSubtree applies rendered content,
nested structure and head fragments, while FillLoadingState surfaces only
the loading placeholder for prefetches that carry no content.

Fingerprints

Fingerprint hashes a canonical encoding of a subtree (blake2b), so two
snapshots can be compared for structural equality without a lockstep walk,
and DiffTrees reports exactly the entries two snapshots disagree on,
skipping everything still shared.
*/
package navcache
