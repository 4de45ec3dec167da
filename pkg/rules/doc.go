// Package rules provides auto-pickup rules and the ordered lists that own
// them.
//
// A Rule pairs a pattern (see package matchers) with two flags: Active rules
// take part in classification, Exclude rules blacklist instead of whitelist.
//
// # Application
//
// A List is replayed into a classification cache in order, so when several
// rules match the same name the last one wins:
//
//   - include rules scan the whole item catalog and whitelist every match
//   - exclude rules only revisit names already in the cache and blacklist
//     the ones they match
//
// An exclude rule that never meets an included name therefore has no effect.
// Items outside the catalog scan are classified on demand with ApplyItem.
//
// # Persistence
//
// Rules serialize as records in list order:
//
//	[
//	  {"rule": "*arrow", "active": true, "exclude": false},
//	  {"rule": "steel*", "active": true, "exclude": true}
//	]
//
// # Change notification
//
// Every mutating List method calls the hook registered with OnChange. The
// settings that own a list use it to mark their cache stale.
package rules
