// Package cfgattrs expands the cfg_attrs attribute syntax, an alternative to
// cfg_attr that is easier to use with doc comments, into standard cfg_attr
// attributes.
//
// The supported syntax is:
//
//     CfgAttrs  = "cfg_attrs" "{" Entries "}" .
//     Entries   = { Entry [ "," ] } .
//     Entry     = Configure | Attribute | DocComment .
//     Configure = "#" "[" "configure" "(" Predicate "," Attrs ")" "]" .
//     Attrs     = { ( Attribute | DocComment ) [ "," ] } .
//
// where Predicate is an opaque configuration predicate, copied verbatim and
// never evaluated, and Attribute is any ordinary #[...] attribute. Configure
// blocks cannot nest.
//
// An item written as:
//
//     #[cfg_attrs {
//         /// This struct is always documented.
//         #[configure(
//             debug_assertions,
//             ///
//             /// Hello! These are docs that only appear when
//             /// debug assertions are active.
//         )]
//         #[derive(Debug)]
//     }]
//     struct Example;
//
// expands to:
//
//     /// This struct is always documented.
//     #[cfg_attr(debug_assertions, doc = "", doc = " Hello! These are docs that only appear when", doc = " debug assertions are active.")]
//     #[derive(Debug)]
//     struct Example;
//
// Each line of a doc comment becomes its own doc argument, because cfg_attr
// accepts only one string per doc key; a blank line becomes doc = "".
//
// Two superseded historical forms are still recognized, for sources written
// against earlier versions of the syntax:
//
//     #[cfg_attrs(
//         debug_assertions,
//         /// docs
//     )]
//     #[cfg_attrs(debug_assertions, {
//         /// docs
//     })]
//
// In the call form the whole body is one implicit configure block under the
// outer predicate. New code should use the wrapped form.
//
// Known limitation: expansion replaces the cfg_attrs attribute as a unit, so
// attributes it produces always end up ahead of attributes on the item that
// were not wrapped by cfg_attrs, whatever the original textual interleaving.
// Keep related attributes inside the wrapper if their relative order matters.
package cfgattrs
