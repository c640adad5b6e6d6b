/*
Package operation sequences the two-phase rename pass over a photo folder.

	+--------------+
	|   Operator   |
	| (Two Phases) |
	+------+-------+
	       |
	+------+-------+
	| Pairs, then  |
	| Plain Stills |
	+------+-------+
	       |
	+------+-------+
	|   Resolver   |
	|  (Renames)   |
	+--------------+

🎯 Purpose:
- Orchestrates renaming of live photo pairs and plain stills
- Decides what gets printed for every per-file outcome
- Aggregates run statistics for the final summary

🔄 Flow:
1. Select and filter pair candidates (live images and clips)
2. Rename each pair, image first; the clip follows only a renamed image
3. Re-scan for remaining stills and rename them with the canonical prefix
4. Emit the terminal message and the counters summary

⚡ Key Responsibilities:
- Phase sequencing
- Per-file error containment
- Progress and outcome reporting

📝 Design Philosophy:
The operator owns all presentation. Scanning, pairing and resolving return
values and errors; the operator decides what the user sees. Failures stay
contained at the file level, so one bad file never aborts the batch and the
pass always reaches its summary.

🔍 Example:

	op, err := operation.New(operation.Options{
		Config:   cfg,
		Resolver: resolver,
		Console:  console,
	})
	if err != nil {
		return err
	}
	stats := op.Rename(ctx)
*/
package operation
