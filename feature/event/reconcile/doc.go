// Package reconcile computes the diff between an event's current item
// collection and a freshly fetched sheet snapshot.
//
// The output is a pending ChangeSet of {toDelete, toUpdate, toAdd}; nothing
// is mutated until the caller confirms it against the store. Matching uses
// two key tiers: the full identity tuple including the title, then the
// loose tuple without it (so a title edit upstream becomes one update, not
// an add plus a delete). There is no fuzzy matching: a row whose loose
// tuple matches nothing current is always an add.
package reconcile
