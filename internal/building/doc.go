// Package building contains the construction core: the Building entity, the
// Builder contract with its single concrete implementation, and the Director
// that replays named recipes against whichever builder it currently holds.
//
// Nothing in this package validates input or returns construction errors.
// Deciding whether to call a setter at all is left to the caller.
package building
