// Package jsontree parses, builds, mutates, and renders JSON documents as
// in-memory value trees.
//
// A [Value] is one of seven kinds: null, false, true, number, string, array,
// or object. [Parse] turns a UTF-8 byte sequence into a tree, and
// [Value.Print] or [Value.PrintBuffered] render a tree back to text, either
// compact or pretty-printed with tab indentation. Arrays and objects are
// ordered sequences that exclusively own their children; objects preserve
// entry order and permit duplicate keys.
//
// Typical usage parses a document, edits it, and renders it back out:
//
//	v, err := jsontree.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	if fmt := v.Get("format"); fmt != nil {
//	    fmt.Replace("frame rate", jsontree.Number(30))
//	}
//
//	out := v.PrintBuffered(len(data), true)
//
// Trees can also be built programmatically:
//
//	root := jsontree.Object()
//	root.AddString("name", "Jack (\"Bee\") Nimble")
//	days := root.Add("days", jsontree.StringArray([]string{"Sunday", "Monday"}))
//	days.Append(jsontree.String("Tuesday"))
//
// [Minify] strips insignificant whitespace and comments (//... and /*...*/)
// from a byte buffer in place. Comments are tolerated only by the minifier;
// [Parse] accepts strict JSON per RFC 8259, with the small deviations
// inherited from its ancestry documented on [Parse].
//
// Values are not safe for concurrent use. A Value must not be reachable from
// two parents at once, except through [Value.AppendReference], which splices
// a borrowed alias instead of the value itself.
package jsontree
