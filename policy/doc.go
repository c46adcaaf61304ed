// Package policy provides optional declarative rules applied before an
// action reaches a worker - for example to require explicit approval for
// write actions or to block selected kinds entirely. Policies travel via
// context so using them is entirely opt-in.
package policy
