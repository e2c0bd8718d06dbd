/*
Package batch encodes or decodes every file matching a doublestar pattern.

	+---------+     +-----------+     +------------+     +---------+
	|  Glob   | --> |  Ignore   | --> | Transform  | --> |  Write  |
	| pattern |     | patterns  |     | (errgroup) |     | outputs |
	+---------+     +-----------+     +------------+     +---------+

🔄 Flow:
1. Match the pattern against the root with doublestar
2. Drop matches hit by an ignore pattern
3. Read, dispatch and write each file, a bounded number at a time
4. Report each file on the console logger from the context

📄 Output names:

	encode  notes.txt        -> notes.txt.rot13
	decode  notes.txt.rot13  -> notes.txt
	decode  notes.txt        -> notes.txt.decoded

An explicit suffix replaces these rules and is always appended.

An output that already holds the same content is left alone and reported as
unchanged. Input that is not valid UTF-8 is reported as failed and the rest
of the batch carries on.
*/
package batch
